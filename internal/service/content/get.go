package content

import (
	"context"
	"fmt"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
	"github.com/sharankona/CompanyPortal-sub000/pkg/ctxutil"
)

// GetContent returns an item with its history, newest entry first.
func (s *Service) GetContent(ctx context.Context, id int64) (*domain.ContentWithHistory, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive integer")
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	history, err := s.history.ListByContent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	if history == nil {
		history = []domain.ContentHistoryEntry{}
	}

	return &domain.ContentWithHistory{ContentItem: *item, History: history}, nil
}

// ListContent returns the items matching the filter, most recently updated
// first. No match yields an empty slice.
func (s *Service) ListContent(ctx context.Context, filter domain.ContentFilter) ([]domain.ContentItem, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.items.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	if items == nil {
		items = []domain.ContentItem{}
	}
	return items, nil
}
