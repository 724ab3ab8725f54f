package service

import (
	"context"
	"errors"

	"renascer/internal/dto"
	"renascer/internal/model"
	"renascer/internal/repository"
)

type ClientService interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.ClientResponse, error)
	List(ctx context.Context) ([]dto.ClientResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, id uint) error
}

type clientService struct {
	repo repository.ClientRepository
}

func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

func clientToResponse(c *model.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Phone:     c.Phone,
		Address:   c.Address,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (s *clientService) Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	client := &model.Client{
		Name:    req.Name,
		TaxID:   req.TaxID,
		Phone:   req.Phone,
		Address: req.Address,
		Email:   req.Email,
	}
	if err := s.repo.Create(ctx, client); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &ConflictError{Msg: "Tax ID or email already registered"}
		}
		return nil, err
	}
	return clientToResponse(client), nil
}

func (s *clientService) GetByID(ctx context.Context, id uint) (*dto.ClientResponse, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Client"}
		}
		return nil, err
	}
	return clientToResponse(client), nil
}

func (s *clientService) List(ctx context.Context) ([]dto.ClientResponse, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		out = append(out, *clientToResponse(&clients[i]))
	}
	return out, nil
}

func (s *clientService) Update(ctx context.Context, id uint, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if req.Empty() {
		return nil, errNoFields
	}
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Client"}
		}
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.TaxID != nil {
		client.TaxID = *req.TaxID
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Email != nil {
		client.Email = *req.Email
	}

	if err := s.repo.Update(ctx, client); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &ConflictError{Msg: "Tax ID or email already registered"}
		}
		return nil, err
	}
	return clientToResponse(client), nil
}

func (s *clientService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return &NotFoundError{Resource: "Client"}
		case errors.Is(err, repository.ErrRestricted):
			return &ConflictError{Msg: "Client is referenced by existing sales"}
		}
		return err
	}
	return nil
}
