package models

import "time"

// Club is a student organization.
type Club struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	Level     []string  `json:"level" db:"level"`
	Mission   string    `json:"mission" db:"mission"`
	Email     string    `json:"email" db:"email"`
	Tags      []Tag     `json:"tags" db:"tags"`
	URL       string    `json:"url" db:"url"`
	Misc      Misc      `json:"misc" db:"misc"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Association ids (populated on read)
	TopicIDs []int64 `json:"topic_ids"`
}

// ClubPatch holds the fields of a partial club update. Nil fields are left untouched.
type ClubPatch struct {
	Name     *string
	Location *string
	Level    *[]string
	Mission  *string
	Email    *string
	Tags     *[]Tag
	URL      *string
	Misc     *Misc
}

// IsEmpty reports whether the patch changes nothing
func (p ClubPatch) IsEmpty() bool {
	return p.Name == nil && p.Location == nil && p.Level == nil && p.Mission == nil &&
		p.Email == nil && p.Tags == nil && p.URL == nil && p.Misc == nil
}

// Apply merges the patch into c
func (p ClubPatch) Apply(c *Club) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.Level != nil {
		c.Level = Strings(*p.Level)
	}
	if p.Mission != nil {
		c.Mission = *p.Mission
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Tags != nil {
		c.Tags = Dedupe(*p.Tags)
	}
	if p.URL != nil {
		c.URL = *p.URL
	}
	if p.Misc != nil {
		c.Misc = p.Misc.OrEmpty()
	}
}
