package models

import "time"

// Topic is a subject area that ties courses, clubs and professors together.
type Topic struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	OffCampus   OffCampus `json:"off_campus" db:"off_campus"`
	Misc        Misc      `json:"misc" db:"misc"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Association ids (populated on read)
	CourseIDs    []int64 `json:"course_ids"`
	ClubIDs      []int64 `json:"club_ids"`
	ProfessorIDs []int64 `json:"professor_ids"`
}

// TopicPatch holds the fields of a partial topic update. Nil fields are left untouched.
type TopicPatch struct {
	Title       *string
	Description *string
	OffCampus   *OffCampus
	Misc        *Misc
}

// IsEmpty reports whether the patch changes nothing
func (p TopicPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.OffCampus == nil && p.Misc == nil
}

// Apply merges the patch into t
func (p TopicPatch) Apply(t *Topic) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.OffCampus != nil {
		t.OffCampus = p.OffCampus.Normalize()
	}
	if p.Misc != nil {
		t.Misc = p.Misc.OrEmpty()
	}
}
