package services

import (
	"context"
	"fmt"

	"github.com/khoury-cyber-guide/backend/internal/app/models"
	"github.com/khoury-cyber-guide/backend/internal/app/models/dto"
	"github.com/khoury-cyber-guide/backend/internal/app/repositories"
	"github.com/khoury-cyber-guide/backend/internal/pkg/validation"
)

// ResourceService handles degree plans, advising, co-op and resume listings
type ResourceService interface {
	CreateResource(ctx context.Context, kind models.ResourceKind, req *dto.CreateResourceRequest) (*models.Resource, error)
	GetResourceByID(ctx context.Context, kind models.ResourceKind, id int64) (*models.Resource, error)
	GetAllResources(ctx context.Context, kind models.ResourceKind) ([]*models.Resource, error)
	UpdateResource(ctx context.Context, kind models.ResourceKind, id int64, req *dto.UpdateResourceRequest) (*models.Resource, error)
}

type resourceServiceImpl struct {
	resources repositories.ResourceRepository
}

// NewResourceService creates a new resource service instance
func NewResourceService(repos *repositories.Repositories) ResourceService {
	return &resourceServiceImpl{resources: repos.Resources}
}

func (s *resourceServiceImpl) CreateResource(ctx context.Context, kind models.ResourceKind, req *dto.CreateResourceRequest) (*models.Resource, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	res := req.ToModel(kind)
	if err := s.resources.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("error creating %s: %w", kind.Label(), err)
	}
	return s.GetResourceByID(ctx, kind, res.ID)
}

func (s *resourceServiceImpl) GetResourceByID(ctx context.Context, kind models.ResourceKind, id int64) (*models.Resource, error) {
	if err := validateID(id, kind.Label()); err != nil {
		return nil, err
	}
	res, err := s.resources.GetByID(ctx, kind, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving %s: %w", kind.Label(), err)
	}
	return res, nil
}

func (s *resourceServiceImpl) GetAllResources(ctx context.Context, kind models.ResourceKind) ([]*models.Resource, error) {
	resources, err := s.resources.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("error retrieving %s listings: %w", kind.Label(), err)
	}
	return resources, nil
}

func (s *resourceServiceImpl) UpdateResource(ctx context.Context, kind models.ResourceKind, id int64, req *dto.UpdateResourceRequest) (*models.Resource, error) {
	if err := validateID(id, kind.Label()); err != nil {
		return nil, err
	}
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	patch := req.ToPatch()
	if !patch.IsEmpty() {
		if err := s.resources.Update(ctx, kind, id, patch); err != nil {
			return nil, fmt.Errorf("error updating %s: %w", kind.Label(), err)
		}
	}
	return s.GetResourceByID(ctx, kind, id)
}
