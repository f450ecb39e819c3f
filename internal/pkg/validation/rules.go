package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// Course code bounds
const (
	MinCourseCode = 0
	MaxCourseCode = 9999
)

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if e.Kind() == reflect.String {
			return "must be at least " + e.Param() + " characters"
		}
		return "must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "must be at most " + e.Param() + " characters"
		}
		return "must be at most " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case "email":
		return "must be a valid email address"
	case "http_url":
		return "must be an http or https URL"
	case "enum":
		return fmt.Sprintf("%v is not an allowed value", e.Value())
	case "course_code":
		return "course code must be a 4-digit number"
	default:
		return "failed on the '" + e.Tag() + "' rule"
	}
}
