package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"renascer/internal/dto"
	"renascer/internal/model"
	"renascer/internal/repository"

	"github.com/shopspring/decimal"
)

var dayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type CollectionService interface {
	Create(ctx context.Context, req dto.CreateCollectionRequest) (*dto.CollectionResponse, error)
	GetByID(ctx context.Context, id uint) (*dto.CollectionResponse, error)
	List(ctx context.Context) ([]dto.CollectionResponse, error)
	Update(ctx context.Context, id uint, req dto.UpdateCollectionRequest) (*dto.CollectionResponse, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*dto.CollectionResponse, error)
	Delete(ctx context.Context, id uint) error
	// ByDate returns the calendar-day view for a YYYY-MM-DD date string.
	ByDate(ctx context.Context, date string) (*dto.CollectionsByDateResponse, error)
}

type collectionService struct {
	repo         repository.CollectionRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductTypeRepository
}

func NewCollectionService(
	repo repository.CollectionRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductTypeRepository,
) CollectionService {
	return &collectionService{repo: repo, supplierRepo: supplierRepo, productRepo: productRepo}
}

// collectionToResponse shapes a row for list output. The nested supplier and
// product carry only id/name/email and id/name/unit.
func collectionToResponse(c *model.Collection) *dto.CollectionResponse {
	resp := &dto.CollectionResponse{
		ID:         c.ID,
		SupplierID: c.SupplierID,
		Status:     c.Status,
		DateTime:   c.DateTime,
		Location:   c.Location,
		ProductID:  c.ProductID,
		Weight:     c.Weight,
		Value:      c.Value,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
	if c.Supplier != nil {
		resp.Supplier = &dto.SupplierSummary{ID: c.Supplier.ID, Name: c.Supplier.Name, Email: c.Supplier.Email}
	}
	if c.Product != nil {
		resp.Product = &dto.ProductSummary{ID: c.Product.ID, Name: c.Product.Name, Unit: c.Product.Unit}
	}
	return resp
}

// collectionToDetailResponse adds the fuller nested selections used by
// single-row fetches (supplier phone/address, product description).
func collectionToDetailResponse(c *model.Collection) *dto.CollectionResponse {
	resp := collectionToResponse(c)
	if c.Supplier != nil {
		resp.Supplier.Phone = c.Supplier.Phone
		resp.Supplier.Address = c.Supplier.Address
	}
	if c.Product != nil {
		resp.Product.Description = c.Product.Description
	}
	return resp
}

func (s *collectionService) Create(ctx context.Context, req dto.CreateCollectionRequest) (*dto.CollectionResponse, error) {
	// Explicit existence pre-reads give clearer 404s than relying on the
	// FK constraint error. The constraint still backstops the race with a
	// concurrent supplier delete.
	supplier, err := s.supplierRepo.FindByID(ctx, req.SupplierID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Supplier"}
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

	status := model.StatusScheduled
	if req.Status != nil {
		status = *req.Status
	}
	collection := &model.Collection{
		SupplierID: req.SupplierID,
		ProductID:  req.ProductID,
		Status:     status,
		DateTime:   req.DateTime,
		Location:   req.Location,
		Weight:     req.Weight,
		Value:      req.Value,
	}
	if err := s.repo.Create(ctx, collection); err != nil {
		return nil, err
	}
	collection.Supplier = supplier
	collection.Product = product
	return collectionToResponse(collection), nil
}

func (s *collectionService) GetByID(ctx context.Context, id uint) (*dto.CollectionResponse, error) {
	collection, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Collection"}
		}
		return nil, err
	}
	return collectionToDetailResponse(collection), nil
}

func (s *collectionService) List(ctx context.Context) ([]dto.CollectionResponse, error) {
	collections, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CollectionResponse, 0, len(collections))
	for i := range collections {
		out = append(out, *collectionToResponse(&collections[i]))
	}
	return out, nil
}

func (s *collectionService) Update(ctx context.Context, id uint, req dto.UpdateCollectionRequest) (*dto.CollectionResponse, error) {
	if req.Empty() {
		return nil, errNoFields
	}
	collection, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Collection"}
		}
		return nil, err
	}

	if req.SupplierID != nil {
		supplier, err := s.supplierRepo.FindByID(ctx, *req.SupplierID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &NotFoundError{Resource: "Supplier"}
			}
			return nil, err
		}
		collection.SupplierID = *req.SupplierID
		collection.Supplier = supplier
	}
	if req.ProductID != nil {
		product, err := s.productRepo.FindByID(ctx, *req.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, &NotFoundError{Resource: "Product type"}
			}
			return nil, err
		}
		collection.ProductID = *req.ProductID
		collection.Product = product
	}
	if req.Status != nil {
		collection.Status = *req.Status
	}
	if req.DateTime != nil {
		collection.DateTime = *req.DateTime
	}
	if req.Location != nil {
		collection.Location = *req.Location
	}
	if req.Weight != nil {
		collection.Weight = *req.Weight
	}
	if req.Value != nil {
		collection.Value = *req.Value
	}

	if err := s.repo.Update(ctx, collection); err != nil {
		return nil, err
	}
	return collectionToResponse(collection), nil
}

func (s *collectionService) UpdateStatus(ctx context.Context, id uint, status string) (*dto.CollectionResponse, error) {
	collection, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Collection"}
		}
		return nil, err
	}
	// Any status may overwrite any other; no Scheduled→Confirmed→Collected
	// ordering is enforced.
	collection.Status = status
	if err := s.repo.Update(ctx, collection); err != nil {
		return nil, err
	}
	return collectionToResponse(collection), nil
}

func (s *collectionService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Resource: "Collection"}
		}
		return err
	}
	return nil
}

func (s *collectionService) ByDate(ctx context.Context, date string) (*dto.CollectionsByDateResponse, error) {
	if !dayPattern.MatchString(date) {
		return nil, &BadRequestError{Msg: "Invalid date format. Use YYYY-MM-DD"}
	}
	// time.Parse rejects impossible dates such as 2025-02-30 or month 13
	// rather than clamping them.
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, &BadRequestError{Msg: "Invalid date"}
	}

	// Inclusive UTC window [00:00:00.000, 23:59:59.999].
	from := day.UTC()
	to := from.Add(24*time.Hour - time.Millisecond)

	collections, err := s.repo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	resp := &dto.CollectionsByDateResponse{
		Date:        date,
		Collections: make([]dto.CollectionResponse, 0, len(collections)),
	}
	totalWeight := decimal.Zero
	totalValue := decimal.Zero
	for i := range collections {
		c := &collections[i]
		item := collectionToResponse(c)
		if c.Supplier != nil {
			item.Supplier.Phone = c.Supplier.Phone
		}
		resp.Collections = append(resp.Collections, *item)

		// Raw sums, no unit conversion in this summary.
		totalWeight = totalWeight.Add(c.Weight)
		totalValue = totalValue.Add(c.Value)
		switch c.Status {
		case model.StatusScheduled:
			resp.Summary.ByStatus.Scheduled++
		case model.StatusConfirmed:
			resp.Summary.ByStatus.Confirmed++
		case model.StatusCollected:
			resp.Summary.ByStatus.Collected++
		}
	}
	resp.Summary.TotalCollections = len(collections)
	resp.Summary.TotalWeight = totalWeight
	resp.Summary.TotalValue = totalValue
	return resp, nil
}
