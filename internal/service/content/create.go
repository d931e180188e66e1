package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
	"github.com/sharankona/CompanyPortal-sub000/pkg/ctxutil"
)

// CreateContent creates a draft item with its first history entry.
func (s *Service) CreateContent(ctx context.Context, input CreateContentInput) (*domain.ContentItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock()
	item := domain.ContentItem{
		Title:       strings.TrimSpace(input.Title),
		Description: trimOrNil(input.Description),
		ContentType: input.ContentType,
		Status:      domain.ContentStatusDraft,
		AssignedTo:  input.AssignedTo,
		Deadline:    input.Deadline,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *domain.ContentItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.items.Create(txCtx, item)
		if createErr != nil {
			return fmt.Errorf("create content: %w", createErr)
		}

		note := domain.CreatedNote
		if _, err := s.history.Create(txCtx, domain.ContentHistoryEntry{
			ContentID: created.ID,
			Status:    domain.ContentStatusDraft,
			Notes:     &note,
			CreatedBy: userID,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("create history: %w", err)
		}

		if err := s.activity.Log(txCtx, domain.ActivityEntry{
			Type: domain.ActivityContentCreated,
			Description: fmt.Sprintf("%s created %s content \"%s\"",
				actorName(ctx), created.ContentType, created.Title),
			UserID:    userID,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "content created",
		slog.Int64("user_id", userID),
		slog.Int64("content_id", created.ID),
		slog.String("content_type", created.ContentType.String()),
	)

	return created, nil
}

// actorName is the display name used in activity descriptions.
func actorName(ctx context.Context) string {
	if name := ctxutil.UserNameFromCtx(ctx); name != "" {
		return name
	}
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return fmt.Sprintf("User %d", id)
	}
	return "Someone"
}
