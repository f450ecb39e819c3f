package dto

import (
	"time"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
)

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	CourseProgram       models.CourseProgram       `json:"course_program" validate:"required,enum"`
	CourseCode          *int                       `json:"course_code" validate:"required,course_code"`
	Title               string                     `json:"title" validate:"required,max=128"`
	Description         string                     `json:"description"`
	ExtendedDescription string                     `json:"extended_description"`
	URL                 string                     `json:"url"`
	Coreq               bool                       `json:"coreq"`
	Attributes          []models.CourseAttribute   `json:"attributes" validate:"omitempty,dive,enum"`
	Terms               string                     `json:"terms" validate:"max=64"`
	Tutoring            string                     `json:"tutoring"`
	CategoryTag         []models.CourseCategoryTag `json:"category_tag" validate:"omitempty,dive,enum"`
	Misc                models.Misc                `json:"misc"`
	TopicIDs            []int64                    `json:"topic_ids" validate:"omitempty,dive,gt=0"`
	PrereqIDs           []int64                    `json:"prereq_ids" validate:"omitempty,dive,gt=0"`
	PastProfessorIDs    []int64                    `json:"past_professor_ids" validate:"omitempty,dive,gt=0"`
}

// ToModel converts the request to a course ready for insertion
func (r *CreateCourseRequest) ToModel() *models.Course {
	course := &models.Course{
		CourseProgram:       r.CourseProgram,
		Title:               r.Title,
		Description:         r.Description,
		ExtendedDescription: r.ExtendedDescription,
		URL:                 r.URL,
		Coreq:               r.Coreq,
		Attributes:          models.Dedupe(r.Attributes),
		Terms:               r.Terms,
		Tutoring:            r.Tutoring,
		CategoryTag:         models.Dedupe(r.CategoryTag),
		Misc:                r.Misc.OrEmpty(),
		TopicIDs:            models.Dedupe(r.TopicIDs),
		PrereqIDs:           models.Dedupe(r.PrereqIDs),
		PastProfessorIDs:    models.Dedupe(r.PastProfessorIDs),
	}
	if r.CourseCode != nil {
		course.CourseCode = *r.CourseCode
	}
	return course
}

// UpdateCourseRequest represents a partial course update. Absent fields are left untouched;
// a present id list replaces that association set.
type UpdateCourseRequest struct {
	CourseProgram       *models.CourseProgram       `json:"course_program" validate:"omitempty,enum"`
	CourseCode          *int                        `json:"course_code" validate:"omitnil,course_code"`
	Title               *string                     `json:"title" validate:"omitnil,min=1,max=128"`
	Description         *string                     `json:"description"`
	ExtendedDescription *string                     `json:"extended_description"`
	URL                 *string                     `json:"url"`
	Coreq               *bool                       `json:"coreq"`
	Attributes          *[]models.CourseAttribute   `json:"attributes" validate:"omitempty,dive,enum"`
	Terms               *string                     `json:"terms" validate:"omitempty,max=64"`
	Tutoring            *string                     `json:"tutoring"`
	CategoryTag         *[]models.CourseCategoryTag `json:"category_tag" validate:"omitempty,dive,enum"`
	Misc                *models.Misc                `json:"misc"`
	TopicIDs            *[]int64                    `json:"topic_ids" validate:"omitempty,dive,gt=0"`
	PrereqIDs           *[]int64                    `json:"prereq_ids" validate:"omitempty,dive,gt=0"`
	PastProfessorIDs    *[]int64                    `json:"past_professor_ids" validate:"omitempty,dive,gt=0"`
}

// ToPatch extracts the scalar changes of the request
func (r *UpdateCourseRequest) ToPatch() models.CoursePatch {
	return models.CoursePatch{
		CourseProgram:       r.CourseProgram,
		CourseCode:          r.CourseCode,
		Title:               r.Title,
		Description:         r.Description,
		ExtendedDescription: r.ExtendedDescription,
		URL:                 r.URL,
		Coreq:               r.Coreq,
		Attributes:          r.Attributes,
		Terms:               r.Terms,
		Tutoring:            r.Tutoring,
		CategoryTag:         r.CategoryTag,
		Misc:                r.Misc,
	}
}

// CourseResponse is the read shape of a course
type CourseResponse struct {
	ID                  int64                      `json:"id"`
	CourseProgram       models.CourseProgram       `json:"course_program"`
	CourseCode          int                        `json:"course_code"`
	Title               string                     `json:"title"`
	Description         string                     `json:"description"`
	ExtendedDescription string                     `json:"extended_description"`
	URL                 string                     `json:"url"`
	Coreq               bool                       `json:"coreq"`
	Attributes          []models.CourseAttribute   `json:"attributes"`
	Terms               string                     `json:"terms"`
	Tutoring            string                     `json:"tutoring"`
	CategoryTag         []models.CourseCategoryTag `json:"category_tag"`
	Misc                models.Misc                `json:"misc"`
	CreatedAt           time.Time                  `json:"created_at"`
	TopicIDs            []int64                    `json:"topic_ids"`
	PrereqIDs           []int64                    `json:"prereq_ids"`
	PastProfessorIDs    []int64                    `json:"past_professor_ids"`
}

// NewCourseResponse converts a course model to its read shape
func NewCourseResponse(c *models.Course) CourseResponse {
	resp := CourseResponse{
		ID:                  c.ID,
		CourseProgram:       c.CourseProgram,
		CourseCode:          c.CourseCode,
		Title:               c.Title,
		Description:         c.Description,
		ExtendedDescription: c.ExtendedDescription,
		URL:                 c.URL,
		Coreq:               c.Coreq,
		Attributes:          c.Attributes,
		Terms:               c.Terms,
		Tutoring:            c.Tutoring,
		CategoryTag:         c.CategoryTag,
		Misc:                c.Misc.OrEmpty(),
		CreatedAt:           c.CreatedAt,
		TopicIDs:            ids(c.TopicIDs),
		PrereqIDs:           ids(c.PrereqIDs),
		PastProfessorIDs:    ids(c.PastProfessorIDs),
	}
	if resp.Attributes == nil {
		resp.Attributes = []models.CourseAttribute{}
	}
	if resp.CategoryTag == nil {
		resp.CategoryTag = []models.CourseCategoryTag{}
	}
	return resp
}

// NewCourseResponses converts a list of courses
func NewCourseResponses(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, NewCourseResponse(c))
	}
	return out
}
