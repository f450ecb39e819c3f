package services

import (
	"context"
	"fmt"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
	"github.com/khoury-cyber-guide/backend/internal/app/repositories"
	"github.com/khoury-cyber-guide/backend/internal/pkg/validation"
)

// ProfessorService defines the interface for professor-related operations
type ProfessorService interface {
	CreateProfessor(ctx context.Context, req *dto.CreateProfessorRequest) (*models.Professor, error)
	GetProfessorByID(ctx context.Context, id int64) (*models.Professor, error)
	GetAllProfessors(ctx context.Context) ([]*models.Professor, error)
	UpdateProfessor(ctx context.Context, id int64, req *dto.UpdateProfessorRequest) (*models.Professor, error)
}

type professorServiceImpl struct {
	professors repositories.ProfessorRepository
	courses    repositories.AssociationRepository
	topics     repositories.AssociationRepository
	tx         repositories.Transactor
}

// NewProfessorService creates a new professor service instance
func NewProfessorService(repos *repositories.Repositories) ProfessorService {
	return &professorServiceImpl{
		professors: repos.Professors,
		courses:    repos.ProfessorCourses,
		topics:     repos.TopicProfessors,
		tx:         repos.Tx,
	}
}

func (s *professorServiceImpl) links(courseIDs, topicIDs *[]int64) []linkSet {
	return []linkSet{
		{ids: courseIDs, replace: s.courses.ReplaceForward},
		{ids: topicIDs, replace: s.topics.ReplaceReverse},
	}
}

func (s *professorServiceImpl) CreateProfessor(ctx context.Context, req *dto.CreateProfessorRequest) (*models.Professor, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	professor := req.ToModel()
	var created *models.Professor
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.professors.Create(ctx, professor); err != nil {
			return err
		}
		sets := s.links(present(professor.CourseIDs), present(professor.TopicIDs))
		if err := replaceLinks(ctx, professor.ID, sets...); err != nil {
			return err
		}
		var err error
		created, err = s.load(ctx, professor.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating professor: %w", err)
	}
	return created, nil
}

func (s *professorServiceImpl) GetProfessorByID(ctx context.Context, id int64) (*models.Professor, error) {
	if err := validateID(id, "professor"); err != nil {
		return nil, err
	}
	professor, err := s.load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}
	return professor, nil
}

func (s *professorServiceImpl) GetAllProfessors(ctx context.Context) ([]*models.Professor, error) {
	professors, err := s.professors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professors: %w", err)
	}

	ids := make([]int64, 0, len(professors))
	for _, p := range professors {
		ids = append(ids, p.ID)
	}
	courses, err := s.courses.ForwardMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professor courses: %w", err)
	}
	topics, err := s.topics.ReverseMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professor topics: %w", err)
	}

	for _, p := range professors {
		p.CourseIDs = courses[p.ID]
		p.TopicIDs = topics[p.ID]
	}
	return professors, nil
}

func (s *professorServiceImpl) UpdateProfessor(ctx context.Context, id int64, req *dto.UpdateProfessorRequest) (*models.Professor, error) {
	if err := validateID(id, "professor"); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	patch := req.ToPatch()
	sets := s.links(req.CourseIDs, req.TopicIDs)
	if patch.IsEmpty() && !anyPresent(sets) {
		return s.GetProfessorByID(ctx, id)
	}

	var updated *models.Professor
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.professors.Update(ctx, id, patch); err != nil {
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
		return nil, fmt.Errorf("error updating professor: %w", err)
	}
	return updated, nil
}

func (s *professorServiceImpl) load(ctx context.Context, id int64) (*models.Professor, error) {
	professor, err := s.professors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if professor.CourseIDs, err = s.courses.Forward(ctx, id); err != nil {
		return nil, err
	}
	if professor.TopicIDs, err = s.topics.Reverse(ctx, id); err != nil {
		return nil, err
	}
	return professor, nil
}
