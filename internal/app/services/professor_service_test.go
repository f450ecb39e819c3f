package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
	"github.com/khoury-cyber-guide/backend/internal/pkg/apperrors"
)

func TestProfessor_CreateAndUpdate(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	course := mustCreateCourse(t, svc, 4740)
	topic, err := svc.Topics.CreateTopic(ctx, &dto.CreateTopicRequest{Title: "Networks"})
	require.NoError(t, err)

	prof, err := svc.Professors.CreateProfessor(ctx, &dto.CreateProfessorRequest{
		FullName:    "Grace Hopper",
		AreaOfFocus: "Systems",
		CourseIDs:   []int64{course.ID},
		TopicIDs:    []int64{topic.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{course.ID}, prof.CourseIDs)
	assert.Equal(t, []int64{topic.ID}, prof.TopicIDs)

	gotCourse, err := svc.Courses.GetCourseByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{prof.ID}, gotCourse.PastProfessorIDs)

	gotTopic, err := svc.Topics.GetTopicByID(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{prof.ID}, gotTopic.ProfessorIDs)

	updated, err := svc.Professors.UpdateProfessor(ctx, prof.ID, &dto.UpdateProfessorRequest{Bio: strPtr("Pioneer")})
	require.NoError(t, err)
	assert.Equal(t, "Pioneer", updated.Bio)
	assert.Equal(t, "Systems", updated.AreaOfFocus)
	assert.Equal(t, []int64{course.ID}, updated.CourseIDs)

	all, err := svc.Professors.GetAllProfessors(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []int64{topic.ID}, all[0].TopicIDs)
}

func TestProfessor_NameLimits(t *testing.T) {
	svc, _ := newTestServices(t)

	long := make([]byte, 65)
	for i := range long {
		long[i] = 'a'
	}
	_, err := svc.Professors.CreateProfessor(context.Background(), &dto.CreateProfessorRequest{FullName: string(long)})
	assert.Equal(t, []string{"full_name"}, validationFields(t, err))
}

func TestProfessor_NotFound(t *testing.T) {
	svc, _ := newTestServices(t)
	_, err := svc.Professors.GetProfessorByID(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrProfessorNotFound)
}
