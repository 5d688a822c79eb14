package usecase

import (
	"context"
	"fmt"

	"github.com/tagmint/tagmint/internal/domain"
	"github.com/tagmint/tagmint/internal/repository"
)

// ListHistoryUseCase reads the local record of created tags.

type ListHistoryUseCase struct {
	History repository.HistoryRepository
}

// Execute returns all recorded tags, oldest first.
func (uc *ListHistoryUseCase) Execute(ctx context.Context) ([]domain.TagRecord, error) {
	records, err := uc.History.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read tag history: %w", err)
	}
	return records, nil
}
