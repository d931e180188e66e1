package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
	"github.com/sharankona/CompanyPortal-sub000/pkg/ctxutil"
)

// CreateWorkflow stores a new definition (admin only).
func (s *Service) CreateWorkflow(ctx context.Context, input CreateWorkflowInput) (*domain.WorkflowDefinition, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var created *domain.WorkflowDefinition
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.workflows.Create(txCtx, domain.WorkflowDefinition{
			Name:        strings.TrimSpace(input.Name),
			ContentType: input.ContentType,
			Steps:       slices.Clone(input.Steps),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create workflow: %w", err)
		}

		name := ctxutil.UserNameFromCtx(ctx)
		if name == "" {
			name = fmt.Sprintf("User %d", userID)
		}
		if err := s.activity.Log(txCtx, domain.ActivityEntry{
			Type:        domain.ActivityWorkflowCreated,
			Description: fmt.Sprintf("%s created %s workflow \"%s\"", name, created.ContentType, created.Name),
			UserID:      userID,
			CreatedAt:   now,
		}); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "workflow created",
		slog.Int64("user_id", userID),
		slog.Int64("workflow_id", created.ID),
		slog.String("content_type", created.ContentType.String()),
		slog.Int("steps", len(created.Steps)),
	)
	return created, nil
}

// ListWorkflows returns all definitions, or only those of contentType when
// it is set, ordered by id.
func (s *Service) ListWorkflows(ctx context.Context, contentType *domain.ContentType) ([]domain.WorkflowDefinition, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if contentType != nil && !contentType.IsValid() {
		return nil, domain.NewValidationError("type", "unknown content type")
	}

	list, err := s.workflows.List(ctx, contentType)
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	if list == nil {
		list = []domain.WorkflowDefinition{}
	}
	return list, nil
}

// GetWorkflow returns one definition.
func (s *Service) GetWorkflow(ctx context.Context, id int64) (*domain.WorkflowDefinition, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be a positive integer")
	}

	wf, err := s.workflows.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get workflow: %w", err)
	}
	return wf, nil
}

// ActiveWorkflow returns the most recently updated definition for a content
// type, or domain.ErrNotFound.
func (s *Service) ActiveWorkflow(ctx context.Context, contentType domain.ContentType) (*domain.WorkflowDefinition, error) {
	if !contentType.IsValid() {
		return nil, domain.NewValidationError("contentType", "unknown content type")
	}
	wf, err := s.workflows.LatestByType(ctx, contentType)
	if err != nil {
		return nil, fmt.Errorf("active workflow: %w", err)
	}
	return wf, nil
}

// UpdateWorkflow applies a partial update (admin only).
func (s *Service) UpdateWorkflow(ctx context.Context, input UpdateWorkflowInput) (*domain.WorkflowDefinition, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.WorkflowDefinition
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		wf, err := s.workflows.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get workflow: %w", err)
		}

		p := input.Patch
		if p.Name != nil {
			wf.Name = strings.TrimSpace(*p.Name)
		}
		if p.ContentType != nil {
			wf.ContentType = *p.ContentType
		}
		if p.Steps != nil {
			wf.Steps = slices.Clone(p.Steps)
		}
		now := s.now().UTC()
		if now.Before(wf.CreatedAt) {
			now = wf.CreatedAt
		}
		wf.UpdatedAt = now

		updated, err = s.workflows.Update(txCtx, *wf)
		if err != nil {
			return fmt.Errorf("update workflow: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "workflow updated",
		slog.Int64("user_id", userID),
		slog.Int64("workflow_id", updated.ID),
	)
	return updated, nil
}

// DeleteWorkflow removes a definition (admin only).
func (s *Service) DeleteWorkflow(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if id <= 0 {
		return domain.NewValidationError("id", "must be a positive integer")
	}

	if err := s.workflows.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete workflow: %w", err)
	}

	s.log.InfoContext(ctx, "workflow deleted",
		slog.Int64("user_id", userID),
		slog.Int64("workflow_id", id),
	)
	return nil
}
