// Package services holds the catalog operations: validation, persistence inside
// a transaction, and read back with association ids.
package services

import (
	"context"
	"fmt"

	"github.com/khoury-cyber-guide/backend/internal/app/repositories"
	"github.com/khoury-cyber-guide/backend/internal/pkg/apperrors"
)

// Services groups every catalog service
type Services struct {
	Topics     TopicService
	Courses    CourseService
	Professors ProfessorService
	Clubs      ClubService
	Resources  ResourceService
}

// NewServices wires the services to a repository set
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Topics:     NewTopicService(repos),
		Courses:    NewCourseService(repos),
		Professors: NewProfessorService(repos),
		Clubs:      NewClubService(repos),
		Resources:  NewResourceService(repos),
	}
}

// validateID rejects ids the store can never assign
func validateID(id int64, what string) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid %s ID", apperrors.ErrValidationFailed, what)
	}
	return nil
}

// linkSet pairs an optional id list with the call that stores it
type linkSet struct {
	ids     *[]int64
	replace func(ctx context.Context, id int64, linked []int64) error
}

// replaceLinks applies every present id list. Absent lists are skipped.
func replaceLinks(ctx context.Context, id int64, sets ...linkSet) error {
	for _, set := range sets {
		if set.ids == nil {
			continue
		}
		if err := set.replace(ctx, id, *set.ids); err != nil {
			return err
		}
	}
	return nil
}

// anyPresent reports whether at least one id list was sent
func anyPresent(sets []linkSet) bool {
	for _, set := range sets {
		if set.ids != nil {
			return true
		}
	}
	return false
}

// present returns a pointer to ids, or nil when the list was not sent
func present(ids []int64) *[]int64 {
	if ids == nil {
		return nil
	}
	return &ids
}

// contains reports whether ids holds id
func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
