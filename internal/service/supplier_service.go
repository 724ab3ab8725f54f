package service

import (
	"context"
	"errors"

	"renascer/internal/dto"
	"renascer/internal/model"
	"renascer/internal/repository"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.SupplierResponse, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error)
	Delete(ctx context.Context, id uint) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func supplierToResponse(s *model.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:           s.ID,
		Name:         s.Name,
		TaxID:        s.TaxID,
		Phone:        s.Phone,
		Address:      s.Address,
		Email:        s.Email,
		SupplierType: s.SupplierType,
		MaterialType: s.MaterialType,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (s *supplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &model.Supplier{
		Name:         req.Name,
		TaxID:        req.TaxID,
		Phone:        req.Phone,
		Address:      req.Address,
		Email:        req.Email,
		SupplierType: req.SupplierType,
		MaterialType: req.MaterialType,
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &ConflictError{Msg: "Tax ID or email already registered"}
		}
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) GetByID(ctx context.Context, id uint) (*dto.SupplierResponse, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Supplier"}
		}
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		out = append(out, *supplierToResponse(&suppliers[i]))
	}
	return out, nil
}

func (s *supplierService) Update(ctx context.Context, id uint, req dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if req.Empty() {
		return nil, errNoFields
	}
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Supplier"}
		}
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.TaxID != nil {
		supplier.TaxID = *req.TaxID
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.SupplierType != nil {
		supplier.SupplierType = *req.SupplierType
	}
	if req.MaterialType != nil {
		supplier.MaterialType = *req.MaterialType
	}

	if err := s.repo.Update(ctx, supplier); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &ConflictError{Msg: "Tax ID or email already registered"}
		}
		return nil, err
	}
	return supplierToResponse(supplier), nil
}

func (s *supplierService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return &NotFoundError{Resource: "Supplier"}
		case errors.Is(err, repository.ErrRestricted):
			return &ConflictError{Msg: "Supplier is referenced by existing collections"}
		}
		return err
	}
	return nil
}
