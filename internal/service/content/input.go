package content

import (
	"strings"
	"time"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

// CreateContentInput holds the parameters for creating a content item.
type CreateContentInput struct {
	Title       string
	Description *string
	ContentType domain.ContentType
	AssignedTo  *int64
	Deadline    *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateContentInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.ContentType == "" {
		errs = append(errs, domain.FieldError{Field: "contentType", Message: "required"})
	} else if !i.ContentType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "contentType", Message: "unknown content type"})
	}
	if i.Description != nil && len(*i.Description) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if i.AssignedTo != nil && *i.AssignedTo <= 0 {
		errs = append(errs, domain.FieldError{Field: "assignedTo", Message: "must be a positive integer"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateContentInput holds the id of the item to patch and the patch itself.
type UpdateContentInput struct {
	ID    int64
	Patch domain.ContentPatch
}

// Validate checks the supplied patch fields.
func (i UpdateContentInput) Validate() error {
	var errs []domain.FieldError
	p := i.Patch

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be a positive integer"})
	}
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > MaxTitleLength {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if p.ContentType != nil && !p.ContentType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "contentType", Message: "unknown content type"})
	}
	if p.Status != nil && !p.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	if p.Description != nil && len(*p.Description) > MaxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if p.AssignedTo != nil && *p.AssignedTo <= 0 {
		errs = append(errs, domain.FieldError{Field: "assignedTo", Message: "must be a positive integer"})
	}
	if p.Notes != nil && len(*p.Notes) > MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
