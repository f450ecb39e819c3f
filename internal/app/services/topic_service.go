package services

import (
	"context"
	"fmt"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
	"github.com/khoury-cyber-guide/backend/internal/app/repositories"
	"github.com/khoury-cyber-guide/backend/internal/pkg/logger"
	"github.com/khoury-cyber-guide/backend/internal/pkg/validation"
)

// TopicService defines the interface for topic-related operations
type TopicService interface {
	CreateTopic(ctx context.Context, req *dto.CreateTopicRequest) (*models.Topic, error)
	GetTopicByID(ctx context.Context, id int64) (*models.Topic, error)
	GetAllTopics(ctx context.Context) ([]*models.Topic, error)
	UpdateTopic(ctx context.Context, id int64, req *dto.UpdateTopicRequest) (*models.Topic, error)
}

// topicServiceImpl implements the TopicService interface
type topicServiceImpl struct {
	topics     repositories.TopicRepository
	courses    repositories.AssociationRepository
	clubs      repositories.AssociationRepository
	professors repositories.AssociationRepository
	tx         repositories.Transactor
}

// NewTopicService creates a new topic service instance
func NewTopicService(repos *repositories.Repositories) TopicService {
	return &topicServiceImpl{
		topics:     repos.Topics,
		courses:    repos.TopicCourses,
		clubs:      repos.TopicClubs,
		professors: repos.TopicProfessors,
		tx:         repos.Tx,
	}
}

func (s *topicServiceImpl) links(courseIDs, clubIDs, professorIDs *[]int64) []linkSet {
	return []linkSet{
		{ids: courseIDs, replace: s.courses.ReplaceForward},
		{ids: clubIDs, replace: s.clubs.ReplaceForward},
		{ids: professorIDs, replace: s.professors.ReplaceForward},
	}
}

// CreateTopic validates and stores a topic with its associations
func (s *topicServiceImpl) CreateTopic(ctx context.Context, req *dto.CreateTopicRequest) (*models.Topic, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	topic := req.ToModel()
	var created *models.Topic
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.topics.Create(ctx, topic); err != nil {
			return err
		}
		sets := s.links(present(topic.CourseIDs), present(topic.ClubIDs), present(topic.ProfessorIDs))
		if err := replaceLinks(ctx, topic.ID, sets...); err != nil {
			return err
		}
		var err error
		created, err = s.load(ctx, topic.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating topic: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("topicID", created.ID).Msg("Topic created")
	return created, nil
}

// GetTopicByID retrieves a topic with its association ids
func (s *topicServiceImpl) GetTopicByID(ctx context.Context, id int64) (*models.Topic, error) {
	if err := validateID(id, "topic"); err != nil {
		return nil, err
	}
	topic, err := s.load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving topic: %w", err)
	}
	return topic, nil
}

// GetAllTopics retrieves every topic with its association ids
func (s *topicServiceImpl) GetAllTopics(ctx context.Context) ([]*models.Topic, error) {
	topics, err := s.topics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving topics: %w", err)
	}

	ids := make([]int64, 0, len(topics))
	for _, t := range topics {
		ids = append(ids, t.ID)
	}
	courses, err := s.courses.ForwardMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving topic courses: %w", err)
	}
	clubs, err := s.clubs.ForwardMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving topic clubs: %w", err)
	}
	professors, err := s.professors.ForwardMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving topic professors: %w", err)
	}

	for _, t := range topics {
		t.CourseIDs = courses[t.ID]
		t.ClubIDs = clubs[t.ID]
		t.ProfessorIDs = professors[t.ID]
	}
	return topics, nil
}

// UpdateTopic merges the present fields of req into the stored topic
func (s *topicServiceImpl) UpdateTopic(ctx context.Context, id int64, req *dto.UpdateTopicRequest) (*models.Topic, error) {
	if err := validateID(id, "topic"); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	patch := req.ToPatch()
	sets := s.links(req.CourseIDs, req.ClubIDs, req.ProfessorIDs)
	if patch.IsEmpty() && !anyPresent(sets) {
		return s.GetTopicByID(ctx, id)
	}

	var updated *models.Topic
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.topics.Update(ctx, id, patch); err != nil {
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
		return nil, fmt.Errorf("error updating topic: %w", err)
	}
	return updated, nil
}

// load reads a topic and resolves its association ids
func (s *topicServiceImpl) load(ctx context.Context, id int64) (*models.Topic, error) {
	topic, err := s.topics.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if topic.CourseIDs, err = s.courses.Forward(ctx, id); err != nil {
		return nil, err
	}
	if topic.ClubIDs, err = s.clubs.Forward(ctx, id); err != nil {
		return nil, err
	}
	if topic.ProfessorIDs, err = s.professors.Forward(ctx, id); err != nil {
		return nil, err
	}
	return topic, nil
}
