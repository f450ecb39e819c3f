// Package repositories defines the store contracts of the catalog and their
// PostgreSQL implementation.
package repositories

import (
	"context"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
)

// TopicRepository stores topics
type TopicRepository interface {
	// Create inserts t and fills in its ID and CreatedAt
	Create(ctx context.Context, t *models.Topic) error
	GetByID(ctx context.Context, id int64) (*models.Topic, error)
	List(ctx context.Context) ([]*models.Topic, error)
	Update(ctx context.Context, id int64, patch models.TopicPatch) error
	Count(ctx context.Context) (int, error)
}

// CourseRepository stores courses
type CourseRepository interface {
	Create(ctx context.Context, c *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, id int64, patch models.CoursePatch) error
}

// ProfessorRepository stores professors
type ProfessorRepository interface {
	Create(ctx context.Context, p *models.Professor) error
	GetByID(ctx context.Context, id int64) (*models.Professor, error)
	List(ctx context.Context) ([]*models.Professor, error)
	Update(ctx context.Context, id int64, patch models.ProfessorPatch) error
}

// ClubRepository stores clubs
type ClubRepository interface {
	Create(ctx context.Context, c *models.Club) error
	GetByID(ctx context.Context, id int64) (*models.Club, error)
	List(ctx context.Context) ([]*models.Club, error)
	Update(ctx context.Context, id int64, patch models.ClubPatch) error
}

// ResourceRepository stores the four resource listings. Every call is scoped to one kind.
type ResourceRepository interface {
	// Create inserts r into the table of r.Kind
	Create(ctx context.Context, r *models.Resource) error
	GetByID(ctx context.Context, kind models.ResourceKind, id int64) (*models.Resource, error)
	List(ctx context.Context, kind models.ResourceKind) ([]*models.Resource, error)
	Update(ctx context.Context, kind models.ResourceKind, id int64, patch models.ResourcePatch) error
}

// AssociationRepository exposes one join relation. The stored pairs are the only
// source of truth; Forward and Reverse are two read views over the same set.
// Every returned id list is sorted ascending and free of duplicates.
type AssociationRepository interface {
	Relation() Relation

	// Forward returns the right ids linked to left
	Forward(ctx context.Context, left int64) ([]int64, error)
	// Reverse returns the left ids linked to right
	Reverse(ctx context.Context, right int64) ([]int64, error)
	// ForwardMany resolves Forward for several left ids in one round trip.
	// Ids without links are absent from the map.
	ForwardMany(ctx context.Context, lefts []int64) (map[int64][]int64, error)
	// ReverseMany resolves Reverse for several right ids in one round trip
	ReverseMany(ctx context.Context, rights []int64) (map[int64][]int64, error)

	// Link adds the pair; adding an existing pair is a no-op.
	// Fails with the side's not found error when either id does not exist.
	Link(ctx context.Context, left, right int64) error
	// Unlink removes the pair; removing a missing pair is a no-op
	Unlink(ctx context.Context, left, right int64) error
	// ReplaceForward makes rights the exact set linked to left
	ReplaceForward(ctx context.Context, left int64, rights []int64) error
	// ReplaceReverse makes lefts the exact set linked to right
	ReplaceReverse(ctx context.Context, right int64, lefts []int64) error
}

// Transactor runs a callback atomically. Repositories called with the
// callback's context take part in the transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SessionOpener hands out one store session per request
type SessionOpener interface {
	// OpenSession returns a context bound to a fresh session and the func
	// that releases it. release is safe to call even when err is non-nil.
	OpenSession(ctx context.Context) (sessionCtx context.Context, release func(), err error)
	Ping(ctx context.Context) error
}

// Repositories holds all the repository instances
type Repositories struct {
	Topics     TopicRepository
	Courses    CourseRepository
	Professors ProfessorRepository
	Clubs      ClubRepository
	Resources  ResourceRepository

	TopicCourses     AssociationRepository
	TopicClubs       AssociationRepository
	TopicProfessors  AssociationRepository
	CoursePrereqs    AssociationRepository
	ProfessorCourses AssociationRepository

	Tx       Transactor
	Sessions SessionOpener
}
