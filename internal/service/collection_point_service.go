package service

import (
	"context"
	"errors"

	"renascer/internal/dto"
	"renascer/internal/model"
	"renascer/internal/repository"
)

type CollectionPointService interface {
	Create(ctx context.Context, req dto.CreateCollectionPointRequest) (*dto.CollectionPointResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.CollectionPointResponse, error)
	List(ctx context.Context) ([]dto.CollectionPointResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateCollectionPointRequest) (*dto.CollectionPointResponse, error)
	Delete(ctx context.Context, id uint) error
}

type collectionPointService struct {
	repo repository.CollectionPointRepository
}

func NewCollectionPointService(repo repository.CollectionPointRepository) CollectionPointService {
	return &collectionPointService{repo: repo}
}

func collectionPointToResponse(p *model.CollectionPoint) *dto.CollectionPointResponse {
	return &dto.CollectionPointResponse{
		ID:          p.ID,
		Name:        p.Name,
		Responsible: p.Responsible,
		Address:     p.Address,
		Phone:       p.Phone,
		Email:       p.Email,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (s *collectionPointService) Create(ctx context.Context, req dto.CreateCollectionPointRequest) (*dto.CollectionPointResponse, error) {
	point := &model.CollectionPoint{
		Name:        req.Name,
		Responsible: req.Responsible,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
	}
	if err := s.repo.Create(ctx, point); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &ConflictError{Msg: "Email already registered"}
		}
		return nil, err
	}
	return collectionPointToResponse(point), nil
}

func (s *collectionPointService) GetByID(ctx context.Context, id uint) (*dto.CollectionPointResponse, error) {
	point, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Collection point"}
		}
		return nil, err
	}
	return collectionPointToResponse(point), nil
}

func (s *collectionPointService) List(ctx context.Context) ([]dto.CollectionPointResponse, error) {
	points, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CollectionPointResponse, 0, len(points))
	for i := range points {
		out = append(out, *collectionPointToResponse(&points[i]))
	}
	return out, nil
}

func (s *collectionPointService) Update(ctx context.Context, id uint, req dto.UpdateCollectionPointRequest) (*dto.CollectionPointResponse, error) {
	if req.Empty() {
		return nil, errNoFields
	}
	point, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Collection point"}
		}
		return nil, err
	}

	if req.Name != nil {
		point.Name = *req.Name
	}
	if req.Responsible != nil {
		point.Responsible = *req.Responsible
	}
	if req.Address != nil {
		point.Address = *req.Address
	}
	if req.Phone != nil {
		point.Phone = *req.Phone
	}
	if req.Email != nil {
		point.Email = *req.Email
	}

	if err := s.repo.Update(ctx, point); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &ConflictError{Msg: "Email already registered"}
		}
		return nil, err
	}
	return collectionPointToResponse(point), nil
}

func (s *collectionPointService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Resource: "Collection point"}
		}
		return err
	}
	return nil
}
