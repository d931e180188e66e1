package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
	"github.com/sharankona/CompanyPortal-sub000/pkg/ctxutil"
)

// DeleteContent removes an item together with its history.
func (s *Service) DeleteContent(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}

	var removed int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.items.GetForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("get content: %w", err)
		}

		removed, err = s.history.DeleteByContent(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete history: %w", err)
		}
		if err := s.items.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete content: %w", err)
		}

		if err := s.activity.Log(txCtx, domain.ActivityEntry{
			Type: domain.ActivityContentDeleted,
			Description: fmt.Sprintf("%s deleted %s content \"%s\"",
				actorName(ctx), item.ContentType, item.Title),
			UserID:    userID,
			CreatedAt: s.clock(),
		}); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "content deleted",
		slog.Int64("user_id", userID),
		slog.Int64("content_id", id),
		slog.Int64("history_removed", removed),
	)
	return nil
}
