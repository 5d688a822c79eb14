package usecase

import (
	"context"
	"fmt"

	"github.com/tagmint/tagmint/internal/domain"
)

// LatestTagUseCase reports the latest existing tag for a prefix.

type LatestTagUseCase struct {
	Source TagSource
}

// Execute returns the latest tag and whether any tag matched the prefix.
func (uc *LatestTagUseCase) Execute(ctx context.Context, prefix string) (domain.Tag, bool, error) {
	raw, err := uc.Source.ListTags(ctx)
	if err != nil {
		return domain.Tag{}, false, fmt.Errorf("failed to list tags: %w", err)
	}
	latest, ok := domain.SelectLatest(raw, prefix)
	return latest, ok, nil
}
