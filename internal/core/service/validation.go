package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength applies to passwords chosen through the service layer.
const MinPasswordLength = 8

var validate = validator.New(validator.WithRequiredStructEnabled())

// validationError turns validator failures into a single 400 ServiceError.
func validationError(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return badRequest(strings.Join(msgs, "; "))
	}
	return badRequest(err.Error())
}

func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func validatePassword(password string) error {
	if err := validate.Var(password, fmt.Sprintf("required,min=%d,max=100", MinPasswordLength)); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			switch ve[0].Tag() {
			case "required":
				return badRequest("password is required")
			case "min":
				return badRequest(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
			}
		}
		return badRequest("password must be at most 100 characters")
	}
	return nil
}
