package dto

import (
	"time"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
)

// OffCampusRequest is the off-campus resource block of a topic payload.
// Every value must be an http(s) URL.
type OffCampusRequest struct {
	Certifications map[string]string `json:"certifications" validate:"omitempty,dive,keys,required,endkeys,http_url"`
	LearningTools  map[string]string `json:"learning_tools" validate:"omitempty,dive,keys,required,endkeys,http_url"`
	Socials        map[string]string `json:"socials" validate:"omitempty,dive,keys,required,endkeys,http_url"`
}

// ToModel converts the request block to the stored structure
func (r *OffCampusRequest) ToModel() models.OffCampus {
	if r == nil {
		return models.OffCampus{}.Normalize()
	}
	return models.OffCampus{
		Certifications: r.Certifications,
		LearningTools:  r.LearningTools,
		Socials:        r.Socials,
	}.Normalize()
}

// CreateTopicRequest represents topic creation data
type CreateTopicRequest struct {
	Title        string            `json:"title" validate:"required,max=128"`
	Description  string            `json:"description"`
	OffCampus    *OffCampusRequest `json:"off_campus"`
	Misc         models.Misc       `json:"misc"`
	CourseIDs    []int64           `json:"course_ids" validate:"omitempty,dive,gt=0"`
	ClubIDs      []int64           `json:"club_ids" validate:"omitempty,dive,gt=0"`
	ProfessorIDs []int64           `json:"professor_ids" validate:"omitempty,dive,gt=0"`
}

// ToModel converts the request to a topic ready for insertion
func (r *CreateTopicRequest) ToModel() *models.Topic {
	return &models.Topic{
		Title:        r.Title,
		Description:  r.Description,
		OffCampus:    r.OffCampus.ToModel(),
		Misc:         r.Misc.OrEmpty(),
		CourseIDs:    models.Dedupe(r.CourseIDs),
		ClubIDs:      models.Dedupe(r.ClubIDs),
		ProfessorIDs: models.Dedupe(r.ProfessorIDs),
	}
}

// UpdateTopicRequest represents a partial topic update. Absent fields are left untouched;
// a present id list replaces that association set.
type UpdateTopicRequest struct {
	Title        *string           `json:"title" validate:"omitnil,min=1,max=128"`
	Description  *string           `json:"description"`
	OffCampus    *OffCampusRequest `json:"off_campus"`
	Misc         *models.Misc      `json:"misc"`
	CourseIDs    *[]int64          `json:"course_ids" validate:"omitempty,dive,gt=0"`
	ClubIDs      *[]int64          `json:"club_ids" validate:"omitempty,dive,gt=0"`
	ProfessorIDs *[]int64          `json:"professor_ids" validate:"omitempty,dive,gt=0"`
}

// ToPatch extracts the scalar changes of the request
func (r *UpdateTopicRequest) ToPatch() models.TopicPatch {
	patch := models.TopicPatch{
		Title:       r.Title,
		Description: r.Description,
		Misc:        r.Misc,
	}
	if r.OffCampus != nil {
		offCampus := r.OffCampus.ToModel()
		patch.OffCampus = &offCampus
	}
	return patch
}

// TopicResponse is the read shape of a topic
type TopicResponse struct {
	ID           int64            `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	OffCampus    models.OffCampus `json:"off_campus"`
	Misc         models.Misc      `json:"misc"`
	CreatedAt    time.Time        `json:"created_at"`
	CourseIDs    []int64          `json:"course_ids"`
	ClubIDs      []int64          `json:"club_ids"`
	ProfessorIDs []int64          `json:"professor_ids"`
}

// NewTopicResponse converts a topic model to its read shape
func NewTopicResponse(t *models.Topic) TopicResponse {
	return TopicResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		OffCampus:    t.OffCampus.Normalize(),
		Misc:         t.Misc.OrEmpty(),
		CreatedAt:    t.CreatedAt,
		CourseIDs:    ids(t.CourseIDs),
		ClubIDs:      ids(t.ClubIDs),
		ProfessorIDs: ids(t.ProfessorIDs),
	}
}

// NewTopicResponses converts a list of topics
func NewTopicResponses(topics []*models.Topic) []TopicResponse {
	out := make([]TopicResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, NewTopicResponse(t))
	}
	return out
}
