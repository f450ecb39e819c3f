package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
	"github.com/khoury-cyber-guide/backend/internal/pkg/apperrors"
)

func TestTopic_OffCampusRoundTrip(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	created, err := svc.Topics.CreateTopic(ctx, &dto.CreateTopicRequest{
		Title: "Certifications",
		OffCampus: &dto.OffCampusRequest{
			Certifications: map[string]string{"CompTIA": "https://comptia.org"},
		},
	})
	require.NoError(t, err)

	got, err := svc.Topics.GetTopicByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"CompTIA": "https://comptia.org"}, got.OffCampus.Certifications)
	assert.Empty(t, got.OffCampus.LearningTools)
	assert.Empty(t, got.OffCampus.Socials)
	assert.Equal(t, models.Misc{}, got.Misc)
}

func TestTopic_OffCampusRejectsNonURL(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Topics.CreateTopic(context.Background(), &dto.CreateTopicRequest{
		Title: "Tools",
		OffCampus: &dto.OffCampusRequest{
			LearningTools: map[string]string{"TryHackMe": "not a url"},
		},
	})
	assert.Equal(t, []string{"off_campus.learning_tools[TryHackMe]"}, validationFields(t, err))
}

func TestTopic_RequiresTitle(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Topics.CreateTopic(context.Background(), &dto.CreateTopicRequest{})
	assert.Equal(t, []string{"title"}, validationFields(t, err))

	topic, err := svc.Topics.CreateTopic(context.Background(), &dto.CreateTopicRequest{Title: "Ok"})
	require.NoError(t, err)
	_, err = svc.Topics.UpdateTopic(context.Background(), topic.ID, &dto.UpdateTopicRequest{Title: strPtr("")})
	assert.Equal(t, []string{"title"}, validationFields(t, err))
}

func TestTopic_PartialUpdateAndAssociations(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	course := mustCreateCourse(t, svc, 3700)
	club, err := svc.Clubs.CreateClub(ctx, &dto.CreateClubRequest{Name: "NUCCDC", Location: "Boston", Level: []string{"undergrad"}})
	require.NoError(t, err)

	topic, err := svc.Topics.CreateTopic(ctx, &dto.CreateTopicRequest{
		Title:       "Blue Team",
		Description: "Defense",
		Misc:        models.Misc{"color": "blue"},
		CourseIDs:   []int64{course.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{course.ID}, topic.CourseIDs)

	// Only the club list is sent; courses and scalars stay as they are
	updated, err := svc.Topics.UpdateTopic(ctx, topic.ID, &dto.UpdateTopicRequest{ClubIDs: idsPtr(club.ID)})
	require.NoError(t, err)
	assert.Equal(t, "Blue Team", updated.Title)
	assert.Equal(t, "Defense", updated.Description)
	assert.Equal(t, models.Misc{"color": "blue"}, updated.Misc)
	assert.Equal(t, []int64{course.ID}, updated.CourseIDs)
	assert.Equal(t, []int64{club.ID}, updated.ClubIDs)

	gotClub, err := svc.Clubs.GetClubByID(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{topic.ID}, gotClub.TopicIDs)

	// An empty list clears the set
	updated, err = svc.Topics.UpdateTopic(ctx, topic.ID, &dto.UpdateTopicRequest{CourseIDs: idsPtr()})
	require.NoError(t, err)
	assert.Empty(t, updated.CourseIDs)

	gotCourse, err := svc.Courses.GetCourseByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Empty(t, gotCourse.TopicIDs)
}

func TestTopic_UpdateWithUnknownProfessorRollsBack(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	topic, err := svc.Topics.CreateTopic(ctx, &dto.CreateTopicRequest{Title: "Red Team"})
	require.NoError(t, err)

	_, err = svc.Topics.UpdateTopic(ctx, topic.ID, &dto.UpdateTopicRequest{
		Title:        strPtr("Renamed"),
		ProfessorIDs: idsPtr(404),
	})
	assert.ErrorIs(t, err, apperrors.ErrProfessorNotFound)

	got, err := svc.Topics.GetTopicByID(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, "Red Team", got.Title)
}

func TestTopic_ListResolvesAssociations(t *testing.T) {
	svc, _ := newTestServices(t)
	ctx := context.Background()

	course := mustCreateCourse(t, svc, 2550)
	first, err := svc.Topics.CreateTopic(ctx, &dto.CreateTopicRequest{Title: "One", CourseIDs: []int64{course.ID}})
	require.NoError(t, err)
	_, err = svc.Topics.CreateTopic(ctx, &dto.CreateTopicRequest{Title: "Two"})
	require.NoError(t, err)

	topics, err := svc.Topics.GetAllTopics(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, first.ID, topics[0].ID)
	assert.Equal(t, []int64{course.ID}, topics[0].CourseIDs)
	assert.Empty(t, topics[1].CourseIDs)
}
