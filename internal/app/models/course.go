package models

import "time"

// Course represents a course listed in the catalog.
type Course struct {
	ID                  int64               `json:"id" db:"id"`
	CourseProgram       CourseProgram       `json:"course_program" db:"course_program"`
	CourseCode          int                 `json:"course_code" db:"course_code"`
	Title               string              `json:"title" db:"title"`
	Description         string              `json:"description" db:"description"`
	ExtendedDescription string              `json:"extended_description" db:"extended_description"`
	URL                 string              `json:"url" db:"url"`
	Coreq               bool                `json:"coreq" db:"coreq"`
	Attributes          []CourseAttribute   `json:"attributes" db:"attributes"`
	Terms               string              `json:"terms" db:"terms"`
	Tutoring            string              `json:"tutoring" db:"tutoring"`
	CategoryTag         []CourseCategoryTag `json:"category_tag" db:"category_tag"`
	Misc                Misc                `json:"misc" db:"misc"`
	CreatedAt           time.Time           `json:"created_at" db:"created_at"`

	// Association ids (populated on read)
	TopicIDs         []int64 `json:"topic_ids"`
	PrereqIDs        []int64 `json:"prereq_ids"`
	PastProfessorIDs []int64 `json:"past_professor_ids"`
}

// CoursePatch holds the fields of a partial course update. Nil fields are left untouched.
type CoursePatch struct {
	CourseProgram       *CourseProgram
	CourseCode          *int
	Title               *string
	Description         *string
	ExtendedDescription *string
	URL                 *string
	Coreq               *bool
	Attributes          *[]CourseAttribute
	Terms               *string
	Tutoring            *string
	CategoryTag         *[]CourseCategoryTag
	Misc                *Misc
}

// IsEmpty reports whether the patch changes nothing
func (p CoursePatch) IsEmpty() bool {
	return p.CourseProgram == nil && p.CourseCode == nil && p.Title == nil &&
		p.Description == nil && p.ExtendedDescription == nil && p.URL == nil &&
		p.Coreq == nil && p.Attributes == nil && p.Terms == nil &&
		p.Tutoring == nil && p.CategoryTag == nil && p.Misc == nil
}

// Apply merges the patch into c
func (p CoursePatch) Apply(c *Course) {
	if p.CourseProgram != nil {
		c.CourseProgram = *p.CourseProgram
	}
	if p.CourseCode != nil {
		c.CourseCode = *p.CourseCode
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.ExtendedDescription != nil {
		c.ExtendedDescription = *p.ExtendedDescription
	}
	if p.URL != nil {
		c.URL = *p.URL
	}
	if p.Coreq != nil {
		c.Coreq = *p.Coreq
	}
	if p.Attributes != nil {
		c.Attributes = Dedupe(*p.Attributes)
	}
	if p.Terms != nil {
		c.Terms = *p.Terms
	}
	if p.Tutoring != nil {
		c.Tutoring = *p.Tutoring
	}
	if p.CategoryTag != nil {
		c.CategoryTag = Dedupe(*p.CategoryTag)
	}
	if p.Misc != nil {
		c.Misc = p.Misc.OrEmpty()
	}
}
