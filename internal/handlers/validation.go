package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/prodcat/catalog_backend_app/internal/dto"
)

// bindingFieldErrors converts a gin binding error into a per-field error
// list for the response envelope. Non-validator errors (malformed JSON,
// wrong types) produce a single generic entry.
func bindingFieldErrors(err error) []dto.FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []dto.FieldError{{Field: "body", Message: "Malformed request body"}}
	}

	fieldErrs := make([]dto.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, dto.FieldError{
			Field:   strings.ToLower(fe.Field()[:1]) + fe.Field()[1:],
			Message: validationMessage(fe),
		})
	}
	return fieldErrs
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Must be at least " + fe.Param() + " characters long"
	case "max":
		return "Must be at most " + fe.Param() + " characters long"
	case "oneof":
		return "Must be one of: " + fe.Param()
	default:
		return "Invalid value"
	}
}

// respondValidationError writes the 422 envelope for a failed binding.
func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse("Validation failed", bindingFieldErrors(err)))
}
