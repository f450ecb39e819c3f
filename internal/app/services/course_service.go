package services

import (
	"context"
	"fmt"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
	"github.com/khoury-cyber-guide/backend/internal/app/repositories"
	"github.com/khoury-cyber-guide/backend/internal/pkg/apperrors"
	"github.com/khoury-cyber-guide/backend/internal/pkg/logger"
	"github.com/khoury-cyber-guide/backend/internal/pkg/validation"
)

// msgSelfPrerequisite is reported when a course lists itself as a prerequisite
const msgSelfPrerequisite = "a course cannot be its own prerequisite"

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)

	// AddPrerequisite records that courseID requires prereqID
	AddPrerequisite(ctx context.Context, courseID, prereqID int64) error
	RemovePrerequisite(ctx context.Context, courseID, prereqID int64) error
	// GetRequiredBy returns the courses that list id as a prerequisite
	GetRequiredBy(ctx context.Context, id int64) ([]int64, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courses    repositories.CourseRepository
	topics     repositories.AssociationRepository
	prereqs    repositories.AssociationRepository
	professors repositories.AssociationRepository
	tx         repositories.Transactor
}

// NewCourseService creates a new course service instance
func NewCourseService(repos *repositories.Repositories) CourseService {
	return &courseServiceImpl{
		courses:    repos.Courses,
		topics:     repos.TopicCourses,
		prereqs:    repos.CoursePrereqs,
		professors: repos.ProfessorCourses,
		tx:         repos.Tx,
	}
}

func (s *courseServiceImpl) links(topicIDs, prereqIDs, professorIDs *[]int64) []linkSet {
	return []linkSet{
		{ids: topicIDs, replace: s.topics.ReplaceReverse},
		{ids: prereqIDs, replace: s.prereqs.ReplaceForward},
		{ids: professorIDs, replace: s.professors.ReplaceReverse},
	}
}

func selfPrerequisite() error {
	return apperrors.NewValidationError("prereq_ids", msgSelfPrerequisite)
}

// CreateCourse validates and stores a course with its associations
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	course := req.ToModel()
	var created *models.Course
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.courses.Create(ctx, course); err != nil {
			return err
		}
		// The id is only known now; a listed id may collide with it
		if contains(course.PrereqIDs, course.ID) {
			return selfPrerequisite()
		}
		sets := s.links(present(course.TopicIDs), present(course.PrereqIDs), present(course.PastProfessorIDs))
		if err := replaceLinks(ctx, course.ID, sets...); err != nil {
			return err
		}
		var err error
		created, err = s.load(ctx, course.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("courseID", created.ID).
		Str("course", fmt.Sprintf("%s %04d", created.CourseProgram, created.CourseCode)).
		Msg("Course created")
	return created, nil
}

// GetCourseByID retrieves a course with its association ids
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if err := validateID(id, "course"); err != nil {
		return nil, err
	}
	course, err := s.load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetAllCourses retrieves every course with its association ids
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	ids := make([]int64, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	topics, err := s.topics.ReverseMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course topics: %w", err)
	}
	prereqs, err := s.prereqs.ForwardMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course prerequisites: %w", err)
	}
	professors, err := s.professors.ReverseMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course professors: %w", err)
	}

	for _, c := range courses {
		c.TopicIDs = topics[c.ID]
		c.PrereqIDs = prereqs[c.ID]
		c.PastProfessorIDs = professors[c.ID]
	}
	return courses, nil
}

// UpdateCourse merges the present fields of req into the stored course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if err := validateID(id, "course"); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.PrereqIDs != nil && contains(*req.PrereqIDs, id) {
		return nil, selfPrerequisite()
	}

	patch := req.ToPatch()
	sets := s.links(req.TopicIDs, req.PrereqIDs, req.PastProfessorIDs)
	if patch.IsEmpty() && !anyPresent(sets) {
		return s.GetCourseByID(ctx, id)
	}

	var updated *models.Course
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.courses.Update(ctx, id, patch); err != nil {
			return err
		}
		if err := replaceLinks(ctx, id, sets...); err != nil {
			return err
		}
		var err error
		updated, err = s.load(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	return updated, nil
}

// AddPrerequisite links prereqID as a prerequisite of courseID
func (s *courseServiceImpl) AddPrerequisite(ctx context.Context, courseID, prereqID int64) error {
	if err := validateID(courseID, "course"); err != nil {
		return err
	}
	if err := validateID(prereqID, "prerequisite"); err != nil {
		return err
	}
	if courseID == prereqID {
		return apperrors.NewValidationError("prereq_id", msgSelfPrerequisite)
	}

	if err := s.prereqs.Link(ctx, courseID, prereqID); err != nil {
		return fmt.Errorf("error adding prerequisite: %w", err)
	}
	return nil
}

// RemovePrerequisite unlinks prereqID from courseID
func (s *courseServiceImpl) RemovePrerequisite(ctx context.Context, courseID, prereqID int64) error {
	if err := validateID(courseID, "course"); err != nil {
		return err
	}
	if err := validateID(prereqID, "prerequisite"); err != nil {
		return err
	}
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		return fmt.Errorf("error removing prerequisite: %w", err)
	}

	if err := s.prereqs.Unlink(ctx, courseID, prereqID); err != nil {
		return fmt.Errorf("error removing prerequisite: %w", err)
	}
	return nil
}

// GetRequiredBy walks the prerequisite edge backwards
func (s *courseServiceImpl) GetRequiredBy(ctx context.Context, id int64) ([]int64, error) {
	if err := validateID(id, "course"); err != nil {
		return nil, err
	}
	if _, err := s.courses.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	ids, err := s.prereqs.Reverse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving dependent courses: %w", err)
	}
	return ids, nil
}

// load reads a course and resolves its association ids
func (s *courseServiceImpl) load(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course.TopicIDs, err = s.topics.Reverse(ctx, id); err != nil {
		return nil, err
	}
	if course.PrereqIDs, err = s.prereqs.Forward(ctx, id); err != nil {
		return nil, err
	}
	if course.PastProfessorIDs, err = s.professors.Reverse(ctx, id); err != nil {
		return nil, err
	}
	return course, nil
}
