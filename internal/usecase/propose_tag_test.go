package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tagmint/tagmint/internal/domain"
	"go.uber.org/zap"
)

// Mock for TagSource
type mockTagSource struct {
	mock.Mock
}

func (m *mockTagSource) ListTags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestProposeTagUseCase_Execute(t *testing.T) {
	t.Run("Should propose next patch from latest tag", func(t *testing.T) {
		source := new(mockTagSource)
		uc := &ProposeTagUseCase{Source: source, Log: zap.NewNop()}
		ctx := context.Background()
		source.On("ListTags", ctx).Return([]string{"v0.1.0", "v0.1.1", "v0.0.9"}, nil)
		proposed, err := uc.Execute(ctx, "", domain.Intent{Level: domain.LevelPatch})
		require.NoError(t, err)
		assert.Equal(t, "v0.1.2", proposed.String())
		source.AssertExpectations(t)
	})
	t.Run("Should propose initial tag when no tag exists", func(t *testing.T) {
		source := new(mockTagSource)
		uc := &ProposeTagUseCase{Source: source, Log: zap.NewNop()}
		ctx := context.Background()
		source.On("ListTags", ctx).Return([]string{}, nil)
		proposed, err := uc.Execute(ctx, "", domain.Intent{Level: domain.LevelMinor})
		require.NoError(t, err)
		assert.Equal(t, "v0.1.0", proposed.String())
		source.AssertExpectations(t)
	})
	t.Run("Should propose initial tag when all candidates are garbage", func(t *testing.T) {
		source := new(mockTagSource)
		uc := &ProposeTagUseCase{Source: source, Log: zap.NewNop()}
		ctx := context.Background()
		source.On("ListTags", ctx).Return([]string{"nightly", "build-2024"}, nil)
		proposed, err := uc.Execute(ctx, "svc", domain.Intent{Level: domain.LevelPatch})
		require.NoError(t, err)
		assert.Equal(t, "svc@v0.1.0", proposed.String())
	})
	t.Run("Should restrict selection to the requested prefix", func(t *testing.T) {
		source := new(mockTagSource)
		uc := &ProposeTagUseCase{Source: source, Log: zap.NewNop()}
		ctx := context.Background()
		source.On("ListTags", ctx).Return([]string{"api@v2.0.0", "v9.0.0", "api@v2.1.0"}, nil)
		proposed, err := uc.Execute(ctx, "api", domain.Intent{Level: domain.LevelMinor})
		require.NoError(t, err)
		assert.Equal(t, "api@v2.2.0", proposed.String())
	})
	t.Run("Should advance a prerelease series", func(t *testing.T) {
		source := new(mockTagSource)
		uc := &ProposeTagUseCase{Source: source, Log: zap.NewNop()}
		ctx := context.Background()
		source.On("ListTags", ctx).Return([]string{"v0.3.0", "v0.3.1-pre0", "v0.3.1-pre1"}, nil)
		proposed, err := uc.Execute(ctx, "", domain.Intent{Prerelease: true})
		require.NoError(t, err)
		assert.Equal(t, "v0.3.1-pre2", proposed.String())
	})
	t.Run("Should handle error from the tag source", func(t *testing.T) {
		source := new(mockTagSource)
		uc := &ProposeTagUseCase{Source: source, Log: zap.NewNop()}
		ctx := context.Background()
		source.On("ListTags", ctx).Return(nil, errors.New("network down"))
		_, err := uc.Execute(ctx, "", domain.Intent{Level: domain.LevelPatch})
		assert.ErrorContains(t, err, "failed to list tags")
	})
}

func TestLatestTagUseCase_Execute(t *testing.T) {
	t.Run("Should return the latest matching tag", func(t *testing.T) {
		source := new(mockTagSource)
		uc := &LatestTagUseCase{Source: source}
		ctx := context.Background()
		source.On("ListTags", ctx).Return([]string{"v0.1.0", "v0.2.0", "junk"}, nil)
		latest, ok, err := uc.Execute(ctx, "")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "v0.2.0", latest.String())
	})
	t.Run("Should report when nothing matches", func(t *testing.T) {
		source := new(mockTagSource)
		uc := &LatestTagUseCase{Source: source}
		ctx := context.Background()
		source.On("ListTags", ctx).Return([]string{"web@v1.0.0"}, nil)
		_, ok, err := uc.Execute(ctx, "api")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
