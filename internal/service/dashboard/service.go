package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

// counter is a store with a total and a created_at windowed count.
type counter interface {
	Count(ctx context.Context) (int, error)
	CountCreatedBetween(ctx context.Context, after, until time.Time) (int, error)
}

type activityRepo interface {
	Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
	CountDistinctUsersBetween(ctx context.Context, after, until time.Time) (int, error)
}

const (
	DefaultActivityLimit = 10
	DefaultActivityMax   = 100
)

// Service computes dashboard counters and the activity feed. It holds no
// state between calls.
type Service struct {
	documents     counter
	users         counter
	announcements counter
	activity      activityRepo
	activityMax   int
	now           func() time.Time
	log           *slog.Logger
}

// NewService creates a new dashboard service. activityMax caps the feed
// size; a non-positive value selects DefaultActivityMax.
func NewService(
	log *slog.Logger,
	documents, users, announcements counter,
	activity activityRepo,
	activityMax int,
) *Service {
	if activityMax <= 0 {
		activityMax = DefaultActivityMax
	}
	return &Service{
		documents:     documents,
		users:         users,
		announcements: announcements,
		activity:      activity,
		activityMax:   activityMax,
		now:           time.Now,
		log:           log.With("service", "dashboard"),
	}
}
