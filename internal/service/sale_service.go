package service

import (
	"context"
	"errors"

	"renascer/internal/dto"
	"renascer/internal/model"
	"renascer/internal/repository"
)

type SaleService interface {
	Create(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.SaleResponse, error)
	List(ctx context.Context) ([]dto.SaleResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateSaleRequest) (*dto.SaleResponse, error)
	Delete(ctx context.Context, id uint) error
}

type saleService struct {
	repo        repository.SaleRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductTypeRepository
}

func NewSaleService(
	repo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductTypeRepository,
) SaleService {
	return &saleService{repo: repo, clientRepo: clientRepo, productRepo: productRepo}
}

func saleToResponse(s *model.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:        s.ID,
		ClientID:  s.ClientID,
		ProductID: s.ProductID,
		DateTime:  s.DateTime,
		Weight:    s.Weight,
		Value:     s.Value,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Client != nil {
		resp.Client = &dto.ClientSummary{ID: s.Client.ID, Name: s.Client.Name, Email: s.Client.Email}
	}
	if s.Product != nil {
		resp.Product = &dto.ProductSummary{ID: s.Product.ID, Name: s.Product.Name, Unit: s.Product.Unit}
	}
	return resp
}

func saleToDetailResponse(s *model.Sale) *dto.SaleResponse {
	resp := saleToResponse(s)
	if s.Client != nil {
		resp.Client.Phone = s.Client.Phone
		resp.Client.Address = s.Client.Address
	}
	if s.Product != nil {
		resp.Product.Description = s.Product.Description
	}
	return resp
}

func (s *saleService) Create(ctx context.Context, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Client"}
		}
		return nil, err
	}
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Product type"}
		}
		return nil, err
	}

	sale := &model.Sale{
		ClientID:  req.ClientID,
		ProductID: req.ProductID,
		DateTime:  req.DateTime,
		Weight:    req.Weight,
		Value:     req.Value,
	}
	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	sale.Client = client
	sale.Product = product
	return saleToResponse(sale), nil
}

func (s *saleService) GetByID(ctx context.Context, id uint) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Sale"}
		}
		return nil, err
	}
	return saleToDetailResponse(sale), nil
}

func (s *saleService) List(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, *saleToResponse(&sales[i]))
	}
	return out, nil
}

func (s *saleService) Update(ctx context.Context, id uint, req dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if req.Empty() {
		return nil, errNoFields
	}
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Sale"}
		}
		return nil, err
	}

	if req.ClientID != nil {
		client, err := s.clientRepo.FindByID(ctx, *req.ClientID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &NotFoundError{Resource: "Client"}
			}
			return nil, err
		}
		sale.ClientID = *req.ClientID
		sale.Client = client
	}
	if req.ProductID != nil {
		product, err := s.productRepo.FindByID(ctx, *req.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &NotFoundError{Resource: "Product type"}
			}
			return nil, err
		}
		sale.ProductID = *req.ProductID
		sale.Product = product
	}
	if req.DateTime != nil {
		sale.DateTime = *req.DateTime
	}
	if req.Weight != nil {
		sale.Weight = *req.Weight
	}
	if req.Value != nil {
		sale.Value = *req.Value
	}

	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return saleToResponse(sale), nil
}

func (s *saleService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Resource: "Sale"}
		}
		return err
	}
	return nil
}
