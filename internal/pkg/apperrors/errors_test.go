package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorUnwraps(t *testing.T) {
	err := fmt.Errorf("error retrieving course: %w", ErrCourseNotFound)
	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.ErrorIs(t, err, ErrCourseNotFound)
	assert.NotErrorIs(t, err, ErrTopicNotFound)

	var custom *CustomError
	assert.True(t, errors.As(err, &custom))
	assert.Equal(t, "course not found", custom.Message)

	assert.True(t, Is(NewBadRequestError("x"), ErrConflict, ErrBadRequest))
	assert.Equal(t, "conflict", (&CustomError{Err: ErrConflict}).Error())
}

func TestValidationError(t *testing.T) {
	verr := NewValidationError("course_code", "course code must be a 4-digit number").
		Add("title", "is required")

	assert.True(t, verr.HasErrors())
	assert.ErrorIs(t, verr, ErrValidationFailed)
	assert.Equal(t, "validation failed: course_code: course code must be a 4-digit number; title: is required", verr.Error())

	var empty *ValidationError
	assert.False(t, empty.HasErrors())
	assert.Equal(t, "validation failed", (&ValidationError{}).Error())
}
