package finance

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

// newValidator reports fields by their "field" tag so that errors carry the
// names clients send.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("field"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// toDomainError converts validator failures to a domain.ValidationError.
func toDomainError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return domain.NewValidationErrors(fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "max":
		return "max " + fe.Param() + " characters"
	case "min":
		if fe.Param() == "1" {
			return "must not be empty"
		}
		return "min " + fe.Param() + " characters"
	default:
		return "invalid value (" + strings.ReplaceAll(fe.Tag(), "_", " ") + ")"
	}
}
