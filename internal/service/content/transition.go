package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

// TransitionPolicy decides whether an item may move to the next status.
// It returns domain.ErrInvalidTransition (possibly wrapped) to reject.
type TransitionPolicy interface {
	Check(ctx context.Context, item domain.ContentItem, next domain.ContentStatus) error
}

// PermissivePolicy allows every transition.
type PermissivePolicy struct{}

func (PermissivePolicy) Check(context.Context, domain.ContentItem, domain.ContentStatus) error {
	return nil
}

type workflowLookup interface {
	LatestByType(ctx context.Context, contentType domain.ContentType) (*domain.WorkflowDefinition, error)
}

// StrictPolicy orders statuses by the steps of the newest workflow definition
// for the item's content type. An item may stay, advance one step or go back
// to any earlier step. Without a definition, or when either status is not
// named by a step, the transition is allowed.
type StrictPolicy struct {
	workflows workflowLookup
}

// NewStrictPolicy creates a StrictPolicy backed by the workflow store.
func NewStrictPolicy(workflows workflowLookup) *StrictPolicy {
	return &StrictPolicy{workflows: workflows}
}

func (p *StrictPolicy) Check(ctx context.Context, item domain.ContentItem, next domain.ContentStatus) error {
	wf, err := p.workflows.LatestByType(ctx, item.ContentType)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load workflow: %w", err)
	}

	order := wf.StatusOrder()
	from, okFrom := order[item.Status]
	to, okTo := order[next]
	if !okFrom || !okTo {
		return nil
	}
	if to > from+1 {
		return fmt.Errorf("%w: %s to %s skips a step of workflow %q",
			domain.ErrInvalidTransition, item.Status, next, wf.Name)
	}
	return nil
}
