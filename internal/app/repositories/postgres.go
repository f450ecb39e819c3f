package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/khoury-cyber-guide/backend/internal/db"
)

// NewRepositories initializes all repositories
func NewRepositories(pg *db.PostgresDB) *Repositories {
	return &Repositories{
		Topics:     NewTopicRepository(pg),
		Courses:    NewCourseRepository(pg),
		Professors: NewProfessorRepository(pg),
		Clubs:      NewClubRepository(pg),
		Resources:  NewResourceRepository(pg),

		TopicCourses:     NewAssociationRepository(pg, TopicCourses),
		TopicClubs:       NewAssociationRepository(pg, TopicClubs),
		TopicProfessors:  NewAssociationRepository(pg, TopicProfessors),
		CoursePrereqs:    NewAssociationRepository(pg, CoursePrereqs),
		ProfessorCourses: NewAssociationRepository(pg, ProfessorCourses),

		Tx:       pg,
		Sessions: pg,
	}
}

// pgBase is embedded by every PostgreSQL repository
type pgBase struct {
	db *db.PostgresDB
	// Use squirrel instance with placeholder format
	sb squirrel.StatementBuilderType
}

func newPgBase(pg *db.PostgresDB) pgBase {
	return pgBase{
		db: pg,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// q returns the request session or transaction, falling back to the pool
func (b pgBase) q(ctx context.Context) db.Querier {
	return b.db.Querier(ctx)
}

// rowScanner is satisfied by pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}
