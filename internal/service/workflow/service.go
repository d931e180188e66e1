package workflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

type workflowRepo interface {
	Create(ctx context.Context, wf domain.WorkflowDefinition) (*domain.WorkflowDefinition, error)
	List(ctx context.Context, contentType *domain.ContentType) ([]domain.WorkflowDefinition, error)
	GetByID(ctx context.Context, id int64) (*domain.WorkflowDefinition, error)
	LatestByType(ctx context.Context, contentType domain.ContentType) (*domain.WorkflowDefinition, error)
	Update(ctx context.Context, wf domain.WorkflowDefinition) (*domain.WorkflowDefinition, error)
	Delete(ctx context.Context, id int64) error
}

type activityLogger interface {
	Log(ctx context.Context, e domain.ActivityEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxNameLength = 100
	MaxSteps      = 50
	MaxStepLength = 100
)

// Service manages workflow definitions.
type Service struct {
	workflows workflowRepo
	activity  activityLogger
	tx        txManager
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new workflow service.
func NewService(log *slog.Logger, workflows workflowRepo, activity activityLogger, tx txManager) *Service {
	return &Service{
		workflows: workflows,
		activity:  activity,
		tx:        tx,
		now:       time.Now,
		log:       log.With("service", "workflow"),
	}
}
