package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	// Create initial commit
	wt, err := repo.Worktree()
	require.NoError(t, err)
	testFile := filepath.Join(dir, "test.txt")
	err = os.WriteFile(testFile, []byte("test content"), 0644)
	require.NoError(t, err)
	_, err = wt.Add("test.txt")
	require.NoError(t, err)
	_, err = wt.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
		},
	})
	require.NoError(t, err)
	return dir, repo
}

func inDir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}

func TestNewGitRepository(t *testing.T) {
	t.Run("Should open an existing repository", func(t *testing.T) {
		dir, _ := setupTestRepo(t)
		inDir(t, dir)
		gitRepo, err := NewGitRepository("origin")
		assert.NoError(t, err)
		assert.NotNil(t, gitRepo)
	})
	t.Run("Should open from a subdirectory", func(t *testing.T) {
		dir, _ := setupTestRepo(t)
		sub := filepath.Join(dir, "pkg", "deep")
		require.NoError(t, os.MkdirAll(sub, 0755))
		inDir(t, sub)
		gitRepo, err := NewGitRepository("origin")
		assert.NoError(t, err)
		assert.NotNil(t, gitRepo)
	})
	t.Run("Should return error for non-git directory", func(t *testing.T) {
		inDir(t, t.TempDir())
		gitRepo, err := NewGitRepository("origin")
		assert.Error(t, err)
		assert.Nil(t, gitRepo)
	})
}

func TestGitRepository_Tags(t *testing.T) {
	t.Run("Should create and list tags", func(t *testing.T) {
		dir, _ := setupTestRepo(t)
		inDir(t, dir)
		gitRepo, err := NewGitRepository("origin")
		require.NoError(t, err)
		ctx := context.Background()
		require.NoError(t, gitRepo.CreateTag(ctx, "v0.1.0", "release v0.1.0"))
		require.NoError(t, gitRepo.CreateTag(ctx, "v0.2.0", "release v0.2.0"))
		tags, err := gitRepo.ListTags(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"v0.1.0", "v0.2.0"}, tags)
	})
	t.Run("Should report tag existence", func(t *testing.T) {
		dir, _ := setupTestRepo(t)
		inDir(t, dir)
		gitRepo, err := NewGitRepository("origin")
		require.NoError(t, err)
		ctx := context.Background()
		require.NoError(t, gitRepo.CreateTag(ctx, "v1.0.0", "release v1.0.0"))
		exists, err := gitRepo.TagExists(ctx, "v1.0.0")
		require.NoError(t, err)
		assert.True(t, exists)
		exists, err = gitRepo.TagExists(ctx, "v9.9.9")
		require.NoError(t, err)
		assert.False(t, exists)
	})
	t.Run("Should list tags when no remote is configured", func(t *testing.T) {
		dir, _ := setupTestRepo(t)
		inDir(t, dir)
		gitRepo, err := NewGitRepository("origin")
		require.NoError(t, err)
		tags, err := gitRepo.ListTags(context.Background())
		require.NoError(t, err)
		assert.Empty(t, tags)
	})
}

func TestGitRepository_Head(t *testing.T) {
	t.Run("Should report current branch and head commit", func(t *testing.T) {
		dir, repo := setupTestRepo(t)
		inDir(t, dir)
		gitRepo, err := NewGitRepository("origin")
		require.NoError(t, err)
		ctx := context.Background()
		branch, err := gitRepo.CurrentBranch(ctx)
		require.NoError(t, err)
		assert.Equal(t, "master", branch)
		commit, err := gitRepo.HeadCommit(ctx)
		require.NoError(t, err)
		head, err := repo.Head()
		require.NoError(t, err)
		assert.Equal(t, head.Hash().String(), commit)
	})
}
