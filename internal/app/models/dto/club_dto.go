package dto

import (
	"time"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
)

// CreateClubRequest represents club creation data
type CreateClubRequest struct {
	Name     string       `json:"name" validate:"required,max=128"`
	Location string       `json:"location" validate:"required,max=255"`
	Level    []string     `json:"level" validate:"required,dive,required"`
	Mission  string       `json:"mission"`
	Email    string       `json:"email" validate:"omitempty,email,max=128"`
	Tags     []models.Tag `json:"tags" validate:"omitempty,dive,enum"`
	URL      string       `json:"url"`
	Misc     models.Misc  `json:"misc"`
	TopicIDs []int64      `json:"topic_ids" validate:"omitempty,dive,gt=0"`
}

// ToModel converts the request to a club ready for insertion
func (r *CreateClubRequest) ToModel() *models.Club {
	return &models.Club{
		Name:     r.Name,
		Location: r.Location,
		Level:    models.Strings(r.Level),
		Mission:  r.Mission,
		Email:    r.Email,
		Tags:     models.Dedupe(r.Tags),
		URL:      r.URL,
		Misc:     r.Misc.OrEmpty(),
		TopicIDs: models.Dedupe(r.TopicIDs),
	}
}

// UpdateClubRequest represents a partial club update
type UpdateClubRequest struct {
	Name     *string       `json:"name" validate:"omitnil,min=1,max=128"`
	Location *string       `json:"location" validate:"omitnil,min=1,max=255"`
	Level    *[]string     `json:"level" validate:"omitnil,dive,required"`
	Mission  *string       `json:"mission"`
	Email    *string       `json:"email" validate:"omitempty,email,max=128"`
	Tags     *[]models.Tag `json:"tags" validate:"omitempty,dive,enum"`
	URL      *string       `json:"url"`
	Misc     *models.Misc  `json:"misc"`
	TopicIDs *[]int64      `json:"topic_ids" validate:"omitempty,dive,gt=0"`
}

// ToPatch extracts the scalar changes of the request
func (r *UpdateClubRequest) ToPatch() models.ClubPatch {
	return models.ClubPatch{
		Name:     r.Name,
		Location: r.Location,
		Level:    r.Level,
		Mission:  r.Mission,
		Email:    r.Email,
		Tags:     r.Tags,
		URL:      r.URL,
		Misc:     r.Misc,
	}
}

// ClubResponse is the read shape of a club
type ClubResponse struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Location  string       `json:"location"`
	Level     []string     `json:"level"`
	Mission   string       `json:"mission"`
	Email     string       `json:"email"`
	Tags      []models.Tag `json:"tags"`
	URL       string       `json:"url"`
	Misc      models.Misc  `json:"misc"`
	CreatedAt time.Time    `json:"created_at"`
	TopicIDs  []int64      `json:"topic_ids"`
}

// NewClubResponse converts a club model to its read shape
func NewClubResponse(c *models.Club) ClubResponse {
	resp := ClubResponse{
		ID:        c.ID,
		Name:      c.Name,
		Location:  c.Location,
		Level:     models.Strings(c.Level),
		Mission:   c.Mission,
		Email:     c.Email,
		Tags:      c.Tags,
		URL:       c.URL,
		Misc:      c.Misc.OrEmpty(),
		CreatedAt: c.CreatedAt,
		TopicIDs:  ids(c.TopicIDs),
	}
	if resp.Tags == nil {
		resp.Tags = []models.Tag{}
	}
	return resp
}

// NewClubResponses converts a list of clubs
func NewClubResponses(clubs []*models.Club) []ClubResponse {
	out := make([]ClubResponse, 0, len(clubs))
	for _, c := range clubs {
		out = append(out, NewClubResponse(c))
	}
	return out
}
