package models

import "time"

// Professor is a faculty member who has taught catalog courses.
type Professor struct {
	ID          int64     `json:"id" db:"id"`
	FullName    string    `json:"full_name" db:"full_name"`
	Bio         string    `json:"bio" db:"bio"`
	AreaOfFocus string    `json:"area_of_focus" db:"area_of_focus"`
	Photo       string    `json:"photo" db:"photo"`
	URL         string    `json:"url" db:"url"`
	Misc        Misc      `json:"misc" db:"misc"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// Association ids (populated on read)
	CourseIDs []int64 `json:"course_ids"`
	TopicIDs  []int64 `json:"topic_ids"`
}

// ProfessorPatch holds the fields of a partial professor update. Nil fields are left untouched.
type ProfessorPatch struct {
	FullName    *string
	Bio         *string
	AreaOfFocus *string
	Photo       *string
	URL         *string
	Misc        *Misc
}

// IsEmpty reports whether the patch changes nothing
func (p ProfessorPatch) IsEmpty() bool {
	return p.FullName == nil && p.Bio == nil && p.AreaOfFocus == nil &&
		p.Photo == nil && p.URL == nil && p.Misc == nil
}

// Apply merges the patch into pr
func (p ProfessorPatch) Apply(pr *Professor) {
	if p.FullName != nil {
		pr.FullName = *p.FullName
	}
	if p.Bio != nil {
		pr.Bio = *p.Bio
	}
	if p.AreaOfFocus != nil {
		pr.AreaOfFocus = *p.AreaOfFocus
	}
	if p.Photo != nil {
		pr.Photo = *p.Photo
	}
	if p.URL != nil {
		pr.URL = *p.URL
	}
	if p.Misc != nil {
		pr.Misc = p.Misc.OrEmpty()
	}
}
