package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/app/repositories/memory"
	"github.com/khoury-cyber-guide/backend/internal/app/services"
)

func TestCreateDefaultData(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories(memory.NewStore())
	svc := services.NewServices(repos)

	require.NoError(t, CreateDefaultData(ctx, repos, svc, zerolog.Nop()))

	topics, err := svc.Topics.GetAllTopics(ctx)
	require.NoError(t, err)
	assert.Len(t, topics, 2)

	courses, err := svc.Courses.GetAllCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	// Ordered by program: CS 2500 then CY 2550
	assert.Equal(t, models.ProgramCS, courses[0].CourseProgram)
	assert.Equal(t, []int64{courses[0].ID}, courses[1].PrereqIDs)

	requiredBy, err := svc.Courses.GetRequiredBy(ctx, courses[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{courses[1].ID}, requiredBy)

	for _, kind := range models.ResourceKinds() {
		listings, err := svc.Resources.GetAllResources(ctx, kind)
		require.NoError(t, err)
		assert.Len(t, listings, 1, kind)
	}

	// A second run leaves the catalog as it is
	require.NoError(t, CreateDefaultData(ctx, repos, svc, zerolog.Nop()))
	topics, err = svc.Topics.GetAllTopics(ctx)
	require.NoError(t, err)
	assert.Len(t, topics, 2)
}
