package services

import (
	"context"
	"fmt"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
	"github.com/khoury-cyber-guide/backend/internal/app/repositories"
	"github.com/khoury-cyber-guide/backend/internal/pkg/validation"
)

// ClubService defines the interface for club-related operations
type ClubService interface {
	CreateClub(ctx context.Context, req *dto.CreateClubRequest) (*models.Club, error)
	GetClubByID(ctx context.Context, id int64) (*models.Club, error)
	GetAllClubs(ctx context.Context) ([]*models.Club, error)
	UpdateClub(ctx context.Context, id int64, req *dto.UpdateClubRequest) (*models.Club, error)
}

type clubServiceImpl struct {
	clubs  repositories.ClubRepository
	topics repositories.AssociationRepository
	tx     repositories.Transactor
}

// NewClubService creates a new club service instance
func NewClubService(repos *repositories.Repositories) ClubService {
	return &clubServiceImpl{
		clubs:  repos.Clubs,
		topics: repos.TopicClubs,
		tx:     repos.Tx,
	}
}

func (s *clubServiceImpl) links(topicIDs *[]int64) []linkSet {
	return []linkSet{{ids: topicIDs, replace: s.topics.ReplaceReverse}}
}

func (s *clubServiceImpl) CreateClub(ctx context.Context, req *dto.CreateClubRequest) (*models.Club, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	club := req.ToModel()
	var created *models.Club
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.clubs.Create(ctx, club); err != nil {
			return err
		}
		if err := replaceLinks(ctx, club.ID, s.links(present(club.TopicIDs))...); err != nil {
			return err
		}
		var err error
		created, err = s.load(ctx, club.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error creating club: %w", err)
	}
	return created, nil
}

func (s *clubServiceImpl) GetClubByID(ctx context.Context, id int64) (*models.Club, error) {
	if err := validateID(id, "club"); err != nil {
		return nil, err
	}
	club, err := s.load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving club: %w", err)
	}
	return club, nil
}

func (s *clubServiceImpl) GetAllClubs(ctx context.Context) ([]*models.Club, error) {
	clubs, err := s.clubs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving clubs: %w", err)
	}

	ids := make([]int64, 0, len(clubs))
	for _, c := range clubs {
		ids = append(ids, c.ID)
	}
	topics, err := s.topics.ReverseMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving club topics: %w", err)
	}
	for _, c := range clubs {
		c.TopicIDs = topics[c.ID]
	}
	return clubs, nil
}

func (s *clubServiceImpl) UpdateClub(ctx context.Context, id int64, req *dto.UpdateClubRequest) (*models.Club, error) {
	if err := validateID(id, "club"); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	patch := req.ToPatch()
	sets := s.links(req.TopicIDs)
	if patch.IsEmpty() && !anyPresent(sets) {
		return s.GetClubByID(ctx, id)
	}

	var updated *models.Club
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.clubs.Update(ctx, id, patch); err != nil {
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
		return nil, fmt.Errorf("error updating club: %w", err)
	}
	return updated, nil
}

func (s *clubServiceImpl) load(ctx context.Context, id int64) (*models.Club, error) {
	club, err := s.clubs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if club.TopicIDs, err = s.topics.Reverse(ctx, id); err != nil {
		return nil, err
	}
	return club, nil
}
