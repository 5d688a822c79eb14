package usecase

import (
	"context"
	"fmt"

	"github.com/tagmint/tagmint/internal/domain"
	"go.uber.org/zap"
)

// TagSource yields raw tag strings; both the git and the GitHub repositories
// satisfy it.
type TagSource interface {
	ListTags(ctx context.Context) ([]string, error)
}

// ProposeTagUseCase computes the next tag to propose: collect raw tags from
// the source, select the latest for the prefix, apply the bump intent.

type ProposeTagUseCase struct {
	Source TagSource
	Log    *zap.Logger
}

// Execute runs the use case. When no existing tag matches the prefix, the
// initial tag is proposed as-is without applying the intent.
func (uc *ProposeTagUseCase) Execute(ctx context.Context, prefix string, intent domain.Intent) (domain.Tag, error) {
	raw, err := uc.Source.ListTags(ctx)
	if err != nil {
		return domain.Tag{}, fmt.Errorf("failed to list tags: %w", err)
	}
	latest, ok := domain.SelectLatest(raw, prefix)
	if !ok {
		initial := domain.InitialTag(prefix)
		uc.Log.Info("no existing tag for prefix, proposing initial tag",
			zap.String("prefix", prefix),
			zap.String("proposed", initial.String()))
		return initial, nil
	}
	next := domain.NextTag(latest, intent)
	uc.Log.Debug("computed next tag",
		zap.String("latest", latest.String()),
		zap.String("level", intent.Level.String()),
		zap.Bool("prerelease", intent.Prerelease),
		zap.String("proposed", next.String()))
	return next, nil
}
