package repositories

import (
	"github.com/khoury-cyber-guide/backend/internal/pkg/apperrors"
)

// Side is one end of a join relation
type Side struct {
	// Column is the join table column holding the id
	Column string
	// Table is the entity table the column references
	Table string
	// NotFound is returned when a linked id does not exist
	NotFound error
}

// Relation describes a many-to-many join table
type Relation struct {
	Table string
	Left  Side
	Right Side
}

func topicSide() Side {
	return Side{Column: "topic_id", Table: "topics", NotFound: apperrors.ErrTopicNotFound}
}

func courseSide(column string) Side {
	return Side{Column: column, Table: "courses", NotFound: apperrors.ErrCourseNotFound}
}

// Join relations of the catalog
var (
	TopicCourses = Relation{
		Table: "topic_courses",
		Left:  topicSide(),
		Right: courseSide("course_id"),
	}
	TopicClubs = Relation{
		Table: "topic_clubs",
		Left:  topicSide(),
		Right: Side{Column: "club_id", Table: "clubs", NotFound: apperrors.ErrClubNotFound},
	}
	TopicProfessors = Relation{
		Table: "topic_professors",
		Left:  topicSide(),
		Right: Side{Column: "professor_id", Table: "professors", NotFound: apperrors.ErrProfessorNotFound},
	}
	// CoursePrereqs is directed: course_id requires prereq_id
	CoursePrereqs = Relation{
		Table: "course_prereqs",
		Left:  courseSide("course_id"),
		Right: courseSide("prereq_id"),
	}
	ProfessorCourses = Relation{
		Table: "professor_courses",
		Left:  Side{Column: "professor_id", Table: "professors", NotFound: apperrors.ErrProfessorNotFound},
		Right: courseSide("course_id"),
	}
)

// Relations lists every join relation
func Relations() []Relation {
	return []Relation{TopicCourses, TopicClubs, TopicProfessors, CoursePrereqs, ProfessorCourses}
}
