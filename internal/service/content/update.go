package content

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
	"github.com/sharankona/CompanyPortal-sub000/pkg/ctxutil"
)

// UpdateContent applies a partial patch. A status change is checked against
// the transition policy and recorded in the history; other changes only
// refresh updatedAt.
func (s *Service) UpdateContent(ctx context.Context, input UpdateContentInput) (*domain.ContentItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := input.Patch
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}
	if patch.Description != nil && !patch.ClearDescription {
		if d := trimOrNil(patch.Description); d != nil {
			patch.Description = d
		} else {
			patch.Description = nil
			patch.ClearDescription = true
		}
	}

	var (
		updated *domain.ContentItem
		changed bool
		next    domain.ContentStatus
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.items.GetForUpdate(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get content: %w", err)
		}

		next, changed = patch.StatusChange(current.Status)
		if changed {
			if err := s.policy.Check(txCtx, *current, next); err != nil {
				return err
			}
		}

		now := s.clock()
		updated, err = s.items.Update(txCtx, patch.Apply(*current, now))
		if err != nil {
			return fmt.Errorf("update content: %w", err)
		}

		if !changed {
			return nil
		}

		note := patch.HistoryNote(next)
		if _, err := s.history.Create(txCtx, domain.ContentHistoryEntry{
			ContentID: updated.ID,
			Status:    next,
			Notes:     &note,
			CreatedBy: userID,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("create history: %w", err)
		}

		if err := s.activity.Log(txCtx, domain.ActivityEntry{
			Type: domain.ActivityContentUpdated,
			Description: fmt.Sprintf("%s updated %s content \"%s\" to %s",
				actorName(ctx), updated.ContentType, updated.Title, next),
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

	attrs := []any{
		slog.Int64("user_id", userID),
		slog.Int64("content_id", updated.ID),
	}
	if changed {
		attrs = append(attrs, slog.String("status", next.String()))
	}
	s.log.InfoContext(ctx, "content updated", attrs...)

	return updated, nil
}
