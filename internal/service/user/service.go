package user

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// activityLogger appends to the activity log.
type activityLogger interface {
	Log(ctx context.Context, e domain.ActivityEntry) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements account bootstrap operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	activity activityLogger
	tx       txManager
	hashCost int
	now      func() time.Time
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	activity activityLogger,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		activity: activity,
		tx:       tx,
		hashCost: bcrypt.DefaultCost,
		now:      time.Now,
	}
}
