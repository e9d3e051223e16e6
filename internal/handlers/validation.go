package handlers

import (
	"github.com/go-playground/validator/v10"
)

// ParseValidationErrors converts binding errors into a per-field message map
func ParseValidationErrors(err error) map[string]string {
	fields := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			fields[fieldError.Field()] = getErrorMessage(fieldError)
		}
	}

	if len(fields) == 0 {
		fields["body"] = "Malformed request body"
	}

	return fields
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters"
	case "numeric":
		return fe.Field() + " must be numeric"
	default:
		return fe.Field() + " is invalid"
	}
}
