package models

import "fmt"

// Enum is implemented by every closed vocabulary in the catalog.
type Enum interface {
	IsValid() bool
}

// CourseProgram is the subject prefix of a course code.
type CourseProgram string

const (
	ProgramCY CourseProgram = "CY"
	ProgramCS CourseProgram = "CS"
	ProgramDS CourseProgram = "DS"
)

// ParseCourseProgram converts s to a CourseProgram, rejecting unknown values.
func ParseCourseProgram(s string) (CourseProgram, error) {
	switch p := CourseProgram(s); p {
	case ProgramCY, ProgramCS, ProgramDS:
		return p, nil
	}
	return "", fmt.Errorf("unknown course program %q", s)
}

// IsValid reports whether p belongs to the vocabulary.
func (p CourseProgram) IsValid() bool {
	_, err := ParseCourseProgram(string(p))
	return err == nil
}

// CourseAttribute is a NUpath-style attribute a course satisfies.
type CourseAttribute string

const (
	AttributeEthicalReasoning      CourseAttribute = "Ethical Reasoning"
	AttributeWritingIntensive      CourseAttribute = "Writing Intensive"
	AttributeFormalQuantReasoning  CourseAttribute = "Formal/Quant Reasoning"
	AttributeNaturalDesignedWorld  CourseAttribute = "Natural/Designed World"
	AttributeAnalyzingUsingData    CourseAttribute = "Analyzing/Using Data"
	AttributeCreativeExpression    CourseAttribute = "Creative Expression/Innovation"
	AttributeInterpretingCulture   CourseAttribute = "Interpreting Culture"
	AttributeCapstoneExperience    CourseAttribute = "Capstone Experience"
	AttributeSocietiesInstitutions CourseAttribute = "Societies/Institutions"
)

// ParseCourseAttribute converts s to a CourseAttribute, rejecting unknown values.
func ParseCourseAttribute(s string) (CourseAttribute, error) {
	switch a := CourseAttribute(s); a {
	case AttributeEthicalReasoning,
		AttributeWritingIntensive,
		AttributeFormalQuantReasoning,
		AttributeNaturalDesignedWorld,
		AttributeAnalyzingUsingData,
		AttributeCreativeExpression,
		AttributeInterpretingCulture,
		AttributeCapstoneExperience,
		AttributeSocietiesInstitutions:
		return a, nil
	}
	return "", fmt.Errorf("unknown course attribute %q", s)
}

// IsValid reports whether a belongs to the vocabulary.
func (a CourseAttribute) IsValid() bool {
	_, err := ParseCourseAttribute(string(a))
	return err == nil
}

// CourseCategoryTag marks which degree requirement a course counts toward.
type CourseCategoryTag string

const (
	CategorySupport       CourseCategoryTag = "Support"
	CategoryCSRequirement CourseCategoryTag = "CS Requirement"
	CategoryCYElective    CourseCategoryTag = "CY Elective"
	CategoryCYRequirement CourseCategoryTag = "CY Requirement"
)

// ParseCourseCategoryTag converts s to a CourseCategoryTag, rejecting unknown values.
func ParseCourseCategoryTag(s string) (CourseCategoryTag, error) {
	switch c := CourseCategoryTag(s); c {
	case CategorySupport, CategoryCSRequirement, CategoryCYElective, CategoryCYRequirement:
		return c, nil
	}
	return "", fmt.Errorf("unknown course category tag %q", s)
}

// IsValid reports whether c belongs to the vocabulary.
func (c CourseCategoryTag) IsValid() bool {
	_, err := ParseCourseCategoryTag(string(c))
	return err == nil
}

// Tag is the audience label shared by clubs and resource listings.
type Tag string

const (
	TagUndergraduate Tag = "Undergraduate"
	TagGraduate      Tag = "Graduate"
	TagPhD           Tag = "PhD"

	TagFreshman  Tag = "Freshman"
	TagSophomore Tag = "Sophomore"
	TagJunior    Tag = "Junior"
	TagSenior    Tag = "Senior"

	TagHonors       Tag = "Honors"
	TagHonorsLegacy Tag = "Honors Legacy"
	TagPlusOne      Tag = "PlusOne"

	TagCombinedMajor Tag = "Combined Major"
	TagDualMajor     Tag = "Dual Major"
	TagMinor         Tag = "Minor"
)

// ParseTag converts s to a Tag, rejecting unknown values.
func ParseTag(s string) (Tag, error) {
	switch t := Tag(s); t {
	case TagUndergraduate, TagGraduate, TagPhD,
		TagFreshman, TagSophomore, TagJunior, TagSenior,
		TagHonors, TagHonorsLegacy, TagPlusOne,
		TagCombinedMajor, TagDualMajor, TagMinor:
		return t, nil
	}
	return "", fmt.Errorf("unknown tag %q", s)
}

// IsValid reports whether t belongs to the vocabulary.
func (t Tag) IsValid() bool {
	_, err := ParseTag(string(t))
	return err == nil
}

// Dedupe drops repeated values, keeping the first occurrence of each.
// The result is never nil.
func Dedupe[T comparable](values []T) []T {
	out := make([]T, 0, len(values))
	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
