package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed constraint on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

var validate = validator.New()

// ValidateStruct runs the struct's validate tags and returns one entry per
// failed field, empty when the input is well formed.
func ValidateStruct(data interface{}) []*FieldError {
	var errs []*FieldError
	err := validate.Struct(data)
	if err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs = append(errs, &FieldError{
				Field:   fe.Field(),
				Tag:     fe.Tag(),
				Param:   fe.Param(),
				Message: message(fe),
			})
		}
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email address"
	case "gte":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s must be non-negative", fe.Field())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag())
	}
}
