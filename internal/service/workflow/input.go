package workflow

import (
	"fmt"
	"strings"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

// CreateWorkflowInput holds the parameters for creating a workflow definition.
type CreateWorkflowInput struct {
	Name        string
	ContentType domain.ContentType
	Steps       []string
}

// Validate checks all fields and collects all errors.
func (i CreateWorkflowInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name)
	errs = validateType(errs, i.ContentType)
	errs = validateSteps(errs, i.Steps)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateWorkflowInput holds the id and partial changes of a definition.
type UpdateWorkflowInput struct {
	ID    int64
	Patch domain.WorkflowPatch
}

// Validate checks the supplied fields.
func (i UpdateWorkflowInput) Validate() error {
	var errs []domain.FieldError
	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be a positive integer"})
	}
	p := i.Patch
	if p.Name == nil && p.ContentType == nil && p.Steps == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if p.Name != nil {
		errs = validateName(errs, *p.Name)
	}
	if p.ContentType != nil {
		errs = validateType(errs, *p.ContentType)
	}
	if p.Steps != nil {
		errs = validateSteps(errs, p.Steps)
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > MaxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	return errs
}

func validateType(errs []domain.FieldError, t domain.ContentType) []domain.FieldError {
	if t == "" {
		return append(errs, domain.FieldError{Field: "contentType", Message: "required"})
	}
	if !t.IsValid() {
		return append(errs, domain.FieldError{Field: "contentType", Message: "unknown content type"})
	}
	return errs
}

func validateSteps(errs []domain.FieldError, steps []string) []domain.FieldError {
	if len(steps) == 0 {
		return append(errs, domain.FieldError{Field: "steps", Message: "at least one step is required"})
	}
	if len(steps) > MaxSteps {
		return append(errs, domain.FieldError{Field: "steps", Message: "max 50 steps"})
	}
	for i, s := range steps {
		s = strings.TrimSpace(s)
		field := fmt.Sprintf("steps[%d]", i)
		if s == "" {
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
		} else if len(s) > MaxStepLength {
			errs = append(errs, domain.FieldError{Field: field, Message: "max 100 characters"})
		}
	}
	return errs
}
