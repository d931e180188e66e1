package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

type contentRepo interface {
	List(ctx context.Context, f domain.ContentFilter) ([]domain.ContentItem, error)
	GetByID(ctx context.Context, id int64) (*domain.ContentItem, error)
	GetForUpdate(ctx context.Context, id int64) (*domain.ContentItem, error)
	Create(ctx context.Context, item domain.ContentItem) (*domain.ContentItem, error)
	Update(ctx context.Context, item domain.ContentItem) (*domain.ContentItem, error)
	Delete(ctx context.Context, id int64) error
}

type historyRepo interface {
	Create(ctx context.Context, e domain.ContentHistoryEntry) (*domain.ContentHistoryEntry, error)
	ListByContent(ctx context.Context, contentID int64) ([]domain.ContentHistoryEntry, error)
	DeleteByContent(ctx context.Context, contentID int64) (int64, error)
}

type activityLogger interface {
	Log(ctx context.Context, e domain.ActivityEntry) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
	MaxNotesLength       = 1000
)

// Service runs the content item lifecycle: creation, patching with status
// history, deletion and lookups.
type Service struct {
	items    contentRepo
	history  historyRepo
	activity activityLogger
	tx       txManager
	policy   TransitionPolicy
	now      func() time.Time
	log      *slog.Logger
}

// Option customises a Service.
type Option func(*Service)

// WithPolicy replaces the default permissive transition policy.
func WithPolicy(p TransitionPolicy) Option {
	return func(s *Service) {
		if p != nil {
			s.policy = p
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a new content service.
func NewService(
	log *slog.Logger,
	items contentRepo,
	history historyRepo,
	activity activityLogger,
	tx txManager,
	opts ...Option,
) *Service {
	s := &Service{
		items:    items,
		history:  history,
		activity: activity,
		tx:       tx,
		policy:   PermissivePolicy{},
		now:      time.Now,
		log:      log.With("service", "content"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) clock() time.Time {
	return s.now().UTC()
}
