package models

import (
	"fmt"
	"time"
)

// ResourceKind identifies one of the four resource listings. The listings share
// one shape and differ only in the table that stores them.
type ResourceKind string

const (
	ResourceDegreePlan ResourceKind = "degree_plan"
	ResourceAdvising   ResourceKind = "advising"
	ResourceCoop       ResourceKind = "coop"
	ResourceResume     ResourceKind = "resume"
)

// ResourceKinds lists every resource kind
func ResourceKinds() []ResourceKind {
	return []ResourceKind{ResourceDegreePlan, ResourceAdvising, ResourceCoop, ResourceResume}
}

// Table returns the table that stores listings of this kind
func (k ResourceKind) Table() string {
	switch k {
	case ResourceDegreePlan:
		return "degree_plans"
	case ResourceAdvising:
		return "advising"
	case ResourceCoop:
		return "coop"
	case ResourceResume:
		return "resumes"
	}
	panic(fmt.Sprintf("models: unknown resource kind %q", string(k)))
}

// Path returns the URL segment the listings are served under
func (k ResourceKind) Path() string {
	switch k {
	case ResourceDegreePlan:
		return "degree-plans"
	case ResourceAdvising:
		return "advising"
	case ResourceCoop:
		return "coops"
	case ResourceResume:
		return "resumes"
	}
	panic(fmt.Sprintf("models: unknown resource kind %q", string(k)))
}

// Label returns the human readable name of the kind
func (k ResourceKind) Label() string {
	switch k {
	case ResourceDegreePlan:
		return "degree plan"
	case ResourceAdvising:
		return "advising resource"
	case ResourceCoop:
		return "co-op resource"
	case ResourceResume:
		return "resume resource"
	}
	return string(k)
}

// Resource is a titled, tagged link: a degree plan, an advising page, a co-op
// guide or a resume guide.
type Resource struct {
	ID        int64        `json:"id" db:"id"`
	Kind      ResourceKind `json:"-"`
	Title     string       `json:"title" db:"title"`
	Tags      []Tag        `json:"tags" db:"tags"`
	URL       string       `json:"url" db:"url"`
	Misc      Misc         `json:"misc" db:"misc"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}

// ResourcePatch holds the fields of a partial resource update. Nil fields are left untouched.
type ResourcePatch struct {
	Title *string
	Tags  *[]Tag
	URL   *string
	Misc  *Misc
}

// IsEmpty reports whether the patch changes nothing
func (p ResourcePatch) IsEmpty() bool {
	return p.Title == nil && p.Tags == nil && p.URL == nil && p.Misc == nil
}

// Apply merges the patch into r
func (p ResourcePatch) Apply(r *Resource) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Tags != nil {
		r.Tags = Dedupe(*p.Tags)
	}
	if p.URL != nil {
		r.URL = *p.URL
	}
	if p.Misc != nil {
		r.Misc = p.Misc.OrEmpty()
	}
}
