package service

import (
	"context"
	"errors"

	"renascer/internal/dto"
	"renascer/internal/model"
	"renascer/internal/repository"
)

type ProductTypeService interface {
	Create(ctx context.Context, req dto.CreateProductTypeRequest) (*dto.ProductTypeResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ProductTypeResponse, error)
	List(ctx context.Context) ([]dto.ProductTypeResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateProductTypeRequest) (*dto.ProductTypeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type productTypeService struct {
	repo repository.ProductTypeRepository
}

func NewProductTypeService(repo repository.ProductTypeRepository) ProductTypeService {
	return &productTypeService{repo: repo}
}

func productTypeToResponse(p *model.ProductType) *dto.ProductTypeResponse {
	return &dto.ProductTypeResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Unit:        p.Unit,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (s *productTypeService) Create(ctx context.Context, req dto.CreateProductTypeRequest) (*dto.ProductTypeResponse, error) {
	product := &model.ProductType{
		Name:        req.Name,
		Description: req.Description,
		Unit:        req.Unit,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &ConflictError{Msg: "Name already registered"}
		}
		return nil, err
	}
	return productTypeToResponse(product), nil
}

func (s *productTypeService) GetByID(ctx context.Context, id uint) (*dto.ProductTypeResponse, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Product type"}
		}
		return nil, err
	}
	return productTypeToResponse(product), nil
}

func (s *productTypeService) List(ctx context.Context) ([]dto.ProductTypeResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductTypeResponse, 0, len(products))
	for i := range products {
		out = append(out, *productTypeToResponse(&products[i]))
	}
	return out, nil
}

func (s *productTypeService) Update(ctx context.Context, id uint, req dto.UpdateProductTypeRequest) (*dto.ProductTypeResponse, error) {
	if req.Empty() {
		return nil, errNoFields
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Product type"}
		}
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}

	if err := s.repo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &ConflictError{Msg: "Name already registered"}
		}
		return nil, err
	}
	return productTypeToResponse(product), nil
}

func (s *productTypeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return &NotFoundError{Resource: "Product type"}
		case errors.Is(err, repository.ErrRestricted):
			return &ConflictError{Msg: "Product type is referenced by existing collections or sales"}
		}
		return err
	}
	return nil
}
