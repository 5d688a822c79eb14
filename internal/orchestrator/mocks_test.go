package orchestrator

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tagmint/tagmint/internal/domain"
)

// Mock for GitRepository
type mockGitRepository struct{ mock.Mock }

func (m *mockGitRepository) ListTags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *mockGitRepository) TagExists(ctx context.Context, tag string) (bool, error) {
	args := m.Called(ctx, tag)
	return args.Bool(0), args.Error(1)
}
func (m *mockGitRepository) CreateTag(ctx context.Context, tag, msg string) error {
	args := m.Called(ctx, tag, msg)
	return args.Error(0)
}
func (m *mockGitRepository) PushTag(ctx context.Context, tag string) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}
func (m *mockGitRepository) CurrentBranch(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *mockGitRepository) HeadCommit(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// Mock for PromptService
type mockPromptService struct{ mock.Mock }

func (m *mockPromptService) Input(label, defaultValue string) (string, error) {
	args := m.Called(label, defaultValue)
	return args.String(0), args.Error(1)
}
func (m *mockPromptService) Confirm(label string, defaultYes bool) (bool, error) {
	args := m.Called(label, defaultYes)
	return args.Bool(0), args.Error(1)
}

// Mock for HistoryRepository
type mockHistoryRepository struct{ mock.Mock }

func (m *mockHistoryRepository) Append(ctx context.Context, record *domain.TagRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
func (m *mockHistoryRepository) List(ctx context.Context) ([]domain.TagRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TagRecord), args.Error(1)
}
