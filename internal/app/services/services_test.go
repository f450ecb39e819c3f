package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
	"github.com/khoury-cyber-guide/backend/internal/app/repositories/memory"
	"github.com/khoury-cyber-guide/backend/internal/pkg/apperrors"
)

func newTestServices(t *testing.T) (*Services, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewServices(memory.NewRepositories(store)), store
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func idsPtr(v ...int64) *[]int64 { return &v }

func courseRequest(program models.CourseProgram, code int) *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		CourseProgram: program,
		CourseCode:    intPtr(code),
		Title:         "Course",
	}
}

func mustCreateCourse(t *testing.T, svc *Services, code int) *models.Course {
	t.Helper()
	c, err := svc.Courses.CreateCourse(context.Background(), courseRequest(models.ProgramCY, code))
	require.NoError(t, err)
	return c
}

// validationFields collects the field names of a validation error
func validationFields(t *testing.T, err error) []string {
	t.Helper()
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr), "expected a validation error, got %v", err)
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	return fields
}
