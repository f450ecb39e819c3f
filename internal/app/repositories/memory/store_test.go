package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/pkg/apperrors"
)

func newCourse(t *testing.T, ctx context.Context, s *Store, code int) int64 {
	t.Helper()
	c := &models.Course{CourseProgram: models.ProgramCY, CourseCode: code, Title: "Course"}
	require.NoError(t, NewRepositories(s).Courses.Create(ctx, c))
	return c.ID
}

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(NewStore())

	first := &models.Topic{Title: "Networks"}
	second := &models.Topic{Title: "Forensics"}
	require.NoError(t, repos.Topics.Create(ctx, first))
	require.NoError(t, repos.Topics.Create(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	got, err := repos.Topics.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Misc)
	assert.NotNil(t, got.OffCampus.Socials)
}

func TestGetReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(NewStore())

	topic := &models.Topic{Title: "Networks"}
	require.NoError(t, repos.Topics.Create(ctx, topic))

	got, err := repos.Topics.GetByID(ctx, topic.ID)
	require.NoError(t, err)
	got.Title = "changed"

	again, err := repos.Topics.GetByID(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, "Networks", again.Title)
}

func TestUpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(NewStore())

	title := "x"
	err := repos.Clubs.Update(ctx, 42, models.ClubPatch{Name: &title})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestPrereqDirectionality(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repos := NewRepositories(s)

	a := newCourse(t, ctx, s, 2500)
	b := newCourse(t, ctx, s, 2550)

	// A is a prerequisite of B
	require.NoError(t, repos.CoursePrereqs.Link(ctx, b, a))

	prereqsOfB, err := repos.CoursePrereqs.Forward(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, []int64{a}, prereqsOfB)

	prereqsOfA, err := repos.CoursePrereqs.Forward(ctx, a)
	require.NoError(t, err)
	assert.Empty(t, prereqsOfA)

	requiredBy, err := repos.CoursePrereqs.Reverse(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, []int64{b}, requiredBy)
}

func TestLinkIsIdempotentAndChecked(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repos := NewRepositories(s)

	topic := &models.Topic{Title: "Crypto"}
	require.NoError(t, repos.Topics.Create(ctx, topic))
	course := newCourse(t, ctx, s, 3700)

	require.NoError(t, repos.TopicCourses.Link(ctx, topic.ID, course))
	require.NoError(t, repos.TopicCourses.Link(ctx, topic.ID, course))

	ids, err := repos.TopicCourses.Forward(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{course}, ids)

	err = repos.TopicCourses.Link(ctx, topic.ID, 999)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	err = repos.TopicCourses.Link(ctx, 999, course)
	assert.ErrorIs(t, err, apperrors.ErrTopicNotFound)

	require.NoError(t, repos.TopicCourses.Unlink(ctx, topic.ID, course))
	require.NoError(t, repos.TopicCourses.Unlink(ctx, topic.ID, course))
	ids, err = repos.TopicCourses.Reverse(ctx, course)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestReplaceForwardAndReverse(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repos := NewRepositories(s)

	c1 := newCourse(t, ctx, s, 1000)
	c2 := newCourse(t, ctx, s, 2000)
	c3 := newCourse(t, ctx, s, 3000)

	require.NoError(t, repos.CoursePrereqs.ReplaceForward(ctx, c3, []int64{c2, c1, c2}))
	ids, err := repos.CoursePrereqs.Forward(ctx, c3)
	require.NoError(t, err)
	assert.Equal(t, []int64{c1, c2}, ids)

	// A failing replacement leaves the set untouched
	err = repos.CoursePrereqs.ReplaceForward(ctx, c3, []int64{c1, 404})
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	ids, err = repos.CoursePrereqs.Forward(ctx, c3)
	require.NoError(t, err)
	assert.Equal(t, []int64{c1, c2}, ids)

	require.NoError(t, repos.CoursePrereqs.ReplaceReverse(ctx, c1, []int64{c2}))
	requiredBy, err := repos.CoursePrereqs.Reverse(ctx, c1)
	require.NoError(t, err)
	assert.Equal(t, []int64{c2}, requiredBy)

	byCourse, err := repos.CoursePrereqs.ForwardMany(ctx, []int64{c1, c2, c3})
	require.NoError(t, err)
	assert.Equal(t, map[int64][]int64{c2: {c1}, c3: {c2}}, byCourse)
}

func TestTransactionRollback(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repos := NewRepositories(s)

	boom := errors.New("boom")
	err := s.WithTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, repos.Topics.Create(ctx, &models.Topic{Title: "Temp"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := repos.Topics.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Panics(t, func() {
		_ = s.WithTransaction(ctx, func(ctx context.Context) error {
			_ = repos.Topics.Create(ctx, &models.Topic{Title: "Temp"})
			panic("kaboom")
		})
	})
	n, err = repos.Topics.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, s.WithTransaction(ctx, func(ctx context.Context) error {
		return repos.Topics.Create(ctx, &models.Topic{Title: "Kept"})
	}))
	n, err = repos.Topics.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRollbackKeepsConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repos := NewRepositories(s)

	a := newCourse(t, ctx, s, 2500)
	b := newCourse(t, ctx, s, 2550)

	boom := errors.New("boom")
	linked := make(chan error, 1)
	err := s.WithTransaction(ctx, func(txCtx context.Context) error {
		require.NoError(t, repos.Topics.Create(txCtx, &models.Topic{Title: "Temp"}))
		go func() { linked <- repos.CoursePrereqs.Link(ctx, b, a) }()
		return boom
	})
	assert.ErrorIs(t, err, boom)
	require.NoError(t, <-linked)

	prereqs, err := repos.CoursePrereqs.Forward(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, []int64{a}, prereqs)

	n, err := repos.Topics.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTransactionWritesAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repos := NewRepositories(s)

	topic := &models.Topic{Title: "Pending"}
	err := s.WithTransaction(ctx, func(txCtx context.Context) error {
		require.NoError(t, repos.Topics.Create(txCtx, topic))

		_, err := repos.Topics.GetByID(ctx, topic.ID)
		assert.ErrorIs(t, err, apperrors.ErrTopicNotFound)

		got, err := repos.Topics.GetByID(txCtx, topic.ID)
		require.NoError(t, err)
		assert.Equal(t, "Pending", got.Title)
		return nil
	})
	require.NoError(t, err)

	got, err := repos.Topics.GetByID(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pending", got.Title)
}

func TestNestedTransactionRollsBackToSavepoint(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repos := NewRepositories(s)

	boom := errors.New("boom")
	require.NoError(t, s.WithTransaction(ctx, func(ctx context.Context) error {
		require.NoError(t, repos.Topics.Create(ctx, &models.Topic{Title: "Outer"}))
		err := s.WithTransaction(ctx, func(ctx context.Context) error {
			require.NoError(t, repos.Topics.Create(ctx, &models.Topic{Title: "Inner"}))
			return boom
		})
		assert.ErrorIs(t, err, boom)
		return nil
	}))

	topics, err := repos.Topics.List(ctx)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "Outer", topics[0].Title)
}

func TestSessionsAreReleased(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, release, err := s.OpenSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s.OpenSessions())

	release()
	release()
	assert.Equal(t, 0, s.OpenSessions())
}

func TestUnavailableStore(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repos := NewRepositories(s)
	s.SetAvailable(false)

	_, release, err := s.OpenSession(ctx)
	release()
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
	assert.ErrorIs(t, s.Ping(ctx), apperrors.ErrStorageUnavailable)

	_, err = repos.Courses.List(ctx)
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)

	s.SetAvailable(true)
	_, err = repos.Courses.List(ctx)
	assert.NoError(t, err)
}

func TestResourceKindsAreSeparate(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(NewStore())

	plan := &models.Resource{Kind: models.ResourceDegreePlan, Title: "BS Cybersecurity"}
	require.NoError(t, repos.Resources.Create(ctx, plan))

	_, err := repos.Resources.GetByID(ctx, models.ResourceCoop, plan.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	plans, err := repos.Resources.List(ctx, models.ResourceDegreePlan)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, models.ResourceDegreePlan, plans[0].Kind)
	assert.Equal(t, []models.Tag{}, plans[0].Tags)
}
