package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

// CreateAdmin creates an administrator account and records that the user
// joined. An existing username yields domain.ErrAlreadyExists.
func (s *Service) CreateAdmin(ctx context.Context, input CreateAdminInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	username := strings.TrimSpace(input.Username)
	fullName := strings.TrimSpace(input.FullName)

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("user %q: %w", username, domain.ErrAlreadyExists)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("user.CreateAdmin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.users.Create(txCtx, domain.User{
			Username:     username,
			FullName:     fullName,
			Role:         domain.UserRoleAdmin,
			PasswordHash: string(hash),
			CreatedAt:    now,
		})
		if createErr != nil {
			return fmt.Errorf("create user: %w", createErr)
		}

		if err := s.activity.Log(txCtx, domain.ActivityEntry{
			Type:        domain.ActivityUserJoined,
			Description: fmt.Sprintf("%s joined the portal", created.FullName),
			UserID:      created.ID,
			CreatedAt:   now,
		}); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "admin created",
		slog.Int64("user_id", created.ID),
		slog.String("username", created.Username),
	)
	return created, nil
}
