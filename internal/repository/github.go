package repository

import "context"

// GithubRepository defines the interface for GitHub API operations.

type GithubRepository interface {
	ListTags(ctx context.Context) ([]string, error)
}
