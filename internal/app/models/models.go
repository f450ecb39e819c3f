package models

// Misc is the free-form extension bag carried by every entity.
// Its contents are opaque to the catalog and never validated.
type Misc map[string]interface{}

// OrEmpty returns m, or an empty bag when m is nil, so that the stored
// JSON is always an object.
func (m Misc) OrEmpty() Misc {
	if m == nil {
		return Misc{}
	}
	return m
}

// OffCampus groups the external resources listed on a topic.
// Each mapping goes from a display name to a URL.
type OffCampus struct {
	Certifications map[string]string `json:"certifications"`
	LearningTools  map[string]string `json:"learning_tools"`
	Socials        map[string]string `json:"socials"`
}

// Normalize replaces nil mappings with empty ones.
func (o OffCampus) Normalize() OffCampus {
	if o.Certifications == nil {
		o.Certifications = map[string]string{}
	}
	if o.LearningTools == nil {
		o.LearningTools = map[string]string{}
	}
	if o.Socials == nil {
		o.Socials = map[string]string{}
	}
	return o
}

// Strings returns s, or an empty slice when s is nil.
func Strings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
