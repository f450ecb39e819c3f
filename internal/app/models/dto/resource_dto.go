package dto

import (
	"time"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
)

// CreateResourceRequest represents creation data for any resource listing
// (degree plan, advising, co-op or resume)
type CreateResourceRequest struct {
	Title string       `json:"title" validate:"required,max=128"`
	Tags  []models.Tag `json:"tags" validate:"omitempty,dive,enum"`
	URL   string       `json:"url"`
	Misc  models.Misc  `json:"misc"`
}

// ToModel converts the request to a listing of the given kind
func (r *CreateResourceRequest) ToModel(kind models.ResourceKind) *models.Resource {
	return &models.Resource{
		Kind:  kind,
		Title: r.Title,
		Tags:  models.Dedupe(r.Tags),
		URL:   r.URL,
		Misc:  r.Misc.OrEmpty(),
	}
}

// UpdateResourceRequest represents a partial listing update
type UpdateResourceRequest struct {
	Title *string       `json:"title" validate:"omitnil,min=1,max=128"`
	Tags  *[]models.Tag `json:"tags" validate:"omitempty,dive,enum"`
	URL   *string       `json:"url"`
	Misc  *models.Misc  `json:"misc"`
}

// ToPatch extracts the changes of the request
func (r *UpdateResourceRequest) ToPatch() models.ResourcePatch {
	return models.ResourcePatch{
		Title: r.Title,
		Tags:  r.Tags,
		URL:   r.URL,
		Misc:  r.Misc,
	}
}

// ResourceResponse is the read shape of a resource listing
type ResourceResponse struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Tags      []models.Tag `json:"tags"`
	URL       string       `json:"url"`
	Misc      models.Misc  `json:"misc"`
	CreatedAt time.Time    `json:"created_at"`
}

// NewResourceResponse converts a listing to its read shape
func NewResourceResponse(r *models.Resource) ResourceResponse {
	resp := ResourceResponse{
		ID:        r.ID,
		Title:     r.Title,
		Tags:      r.Tags,
		URL:       r.URL,
		Misc:      r.Misc.OrEmpty(),
		CreatedAt: r.CreatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []models.Tag{}
	}
	return resp
}

// NewResourceResponses converts a list of listings
func NewResourceResponses(resources []*models.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for _, r := range resources {
		out = append(out, NewResourceResponse(r))
	}
	return out
}
