package dto

import (
	"time"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
)

// CreateProfessorRequest represents professor creation data
type CreateProfessorRequest struct {
	FullName    string      `json:"full_name" validate:"required,max=64"`
	Bio         string      `json:"bio"`
	AreaOfFocus string      `json:"area_of_focus" validate:"max=255"`
	Photo       string      `json:"photo"`
	URL         string      `json:"url"`
	Misc        models.Misc `json:"misc"`
	CourseIDs   []int64     `json:"course_ids" validate:"omitempty,dive,gt=0"`
	TopicIDs    []int64     `json:"topic_ids" validate:"omitempty,dive,gt=0"`
}

// ToModel converts the request to a professor ready for insertion
func (r *CreateProfessorRequest) ToModel() *models.Professor {
	return &models.Professor{
		FullName:    r.FullName,
		Bio:         r.Bio,
		AreaOfFocus: r.AreaOfFocus,
		Photo:       r.Photo,
		URL:         r.URL,
		Misc:        r.Misc.OrEmpty(),
		CourseIDs:   models.Dedupe(r.CourseIDs),
		TopicIDs:    models.Dedupe(r.TopicIDs),
	}
}

// UpdateProfessorRequest represents a partial professor update
type UpdateProfessorRequest struct {
	FullName    *string      `json:"full_name" validate:"omitnil,min=1,max=64"`
	Bio         *string      `json:"bio"`
	AreaOfFocus *string      `json:"area_of_focus" validate:"omitnil,max=255"`
	Photo       *string      `json:"photo"`
	URL         *string      `json:"url"`
	Misc        *models.Misc `json:"misc"`
	CourseIDs   *[]int64     `json:"course_ids" validate:"omitempty,dive,gt=0"`
	TopicIDs    *[]int64     `json:"topic_ids" validate:"omitempty,dive,gt=0"`
}

// ToPatch extracts the scalar changes of the request
func (r *UpdateProfessorRequest) ToPatch() models.ProfessorPatch {
	return models.ProfessorPatch{
		FullName:    r.FullName,
		Bio:         r.Bio,
		AreaOfFocus: r.AreaOfFocus,
		Photo:       r.Photo,
		URL:         r.URL,
		Misc:        r.Misc,
	}
}

// ProfessorResponse is the read shape of a professor
type ProfessorResponse struct {
	ID          int64       `json:"id"`
	FullName    string      `json:"full_name"`
	Bio         string      `json:"bio"`
	AreaOfFocus string      `json:"area_of_focus"`
	Photo       string      `json:"photo"`
	URL         string      `json:"url"`
	Misc        models.Misc `json:"misc"`
	CreatedAt   time.Time   `json:"created_at"`
	CourseIDs   []int64     `json:"course_ids"`
	TopicIDs    []int64     `json:"topic_ids"`
}

// NewProfessorResponse converts a professor model to its read shape
func NewProfessorResponse(p *models.Professor) ProfessorResponse {
	return ProfessorResponse{
		ID:          p.ID,
		FullName:    p.FullName,
		Bio:         p.Bio,
		AreaOfFocus: p.AreaOfFocus,
		Photo:       p.Photo,
		URL:         p.URL,
		Misc:        p.Misc.OrEmpty(),
		CreatedAt:   p.CreatedAt,
		CourseIDs:   ids(p.CourseIDs),
		TopicIDs:    ids(p.TopicIDs),
	}
}

// NewProfessorResponses converts a list of professors
func NewProfessorResponses(professors []*models.Professor) []ProfessorResponse {
	out := make([]ProfessorResponse, 0, len(professors))
	for _, p := range professors {
		out = append(out, NewProfessorResponse(p))
	}
	return out
}
