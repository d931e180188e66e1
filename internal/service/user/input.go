package user

import (
	"strings"
	"unicode"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

const (
	MinPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	MaxPasswordLength = 72
)

// CreateAdminInput holds parameters for bootstrapping an administrator.
type CreateAdminInput struct {
	Username string
	FullName string
	Password string
}

// Validate validates the create admin input.
func (i CreateAdminInput) Validate() error {
	var errs []domain.FieldError

	username := strings.TrimSpace(i.Username)
	switch {
	case username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case len(username) > 64:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	case strings.IndexFunc(username, unicode.IsSpace) >= 0:
		errs = append(errs, domain.FieldError{Field: "username", Message: "must not contain spaces"})
	}

	if strings.TrimSpace(i.FullName) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.FullName) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(i.Password) < MinPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	} else if len(i.Password) > MaxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 bytes"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
