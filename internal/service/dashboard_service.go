package service

import (
	"context"
	"sort"

	"renascer/internal/dto"
	"renascer/internal/model"
	"renascer/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardService computes derived indicators by reading raw rows and
// reducing them in memory. Weight sums interpret each row's weight in its
// product's unit and normalize to kilograms before summing.
type DashboardService interface {
	Indicators(ctx context.Context) (*dto.IndicatorsResponse, error)
	MonthlyMovement(ctx context.Context) ([]dto.MonthlyMovementEntry, error)
	CollectionsBySupplier(ctx context.Context) ([]dto.CollectionsBySupplierEntry, error)
	SalesByProductType(ctx context.Context) ([]dto.SalesByProductTypeEntry, error)
}

type dashboardService struct {
	collectionRepo repository.CollectionRepository
	saleRepo       repository.SaleRepository
	supplierRepo   repository.SupplierRepository
	productRepo    repository.ProductTypeRepository
}

func NewDashboardService(
	collectionRepo repository.CollectionRepository,
	saleRepo repository.SaleRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductTypeRepository,
) DashboardService {
	return &dashboardService{
		collectionRepo: collectionRepo,
		saleRepo:       saleRepo,
		supplierRepo:   supplierRepo,
		productRepo:    productRepo,
	}
}

func rowUnit(p *model.ProductType) string {
	if p == nil {
		return model.UnitKilogram
	}
	return p.Unit
}

func (s *dashboardService) Indicators(ctx context.Context) (*dto.IndicatorsResponse, error) {
	scheduled, err := s.collectionRepo.ListByStatusWithProduct(ctx, model.StatusScheduled)
	if err != nil {
		return nil, err
	}
	collected, err := s.collectionRepo.ListByStatusWithProduct(ctx, model.StatusCollected)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.ListAscWithProduct(ctx)
	if err != nil {
		return nil, err
	}

	scheduledWeight := decimal.Zero
	for i := range scheduled {
		scheduledWeight = scheduledWeight.Add(ToKilograms(scheduled[i].Weight, rowUnit(scheduled[i].Product)))
	}
	collectedWeight := decimal.Zero
	for i := range collected {
		collectedWeight = collectedWeight.Add(ToKilograms(collected[i].Weight, rowUnit(collected[i].Product)))
	}
	soldWeight := decimal.Zero
	salesValue := decimal.Zero
	for i := range sales {
		soldWeight = soldWeight.Add(ToKilograms(sales[i].Weight, rowUnit(sales[i].Product)))
		salesValue = salesValue.Add(sales[i].Value)
	}

	return &dto.IndicatorsResponse{
		TotalScheduledWeight: RoundWeight(scheduledWeight),
		TotalCollectedWeight: RoundWeight(collectedWeight),
		TotalSoldWeight:      RoundWeight(soldWeight),
		// The value total is the raw sum, not independently rounded.
		TotalSalesValue: salesValue,
	}, nil
}

func (s *dashboardService) MonthlyMovement(ctx context.Context) ([]dto.MonthlyMovementEntry, error) {
	collections, err := s.collectionRepo.ListAscWithProduct(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.ListAscWithProduct(ctx)
	if err != nil {
		return nil, err
	}

	// Months appear in first-occurrence order over the ascending-timestamp
	// inputs. Callers must sort if they need a guaranteed order.
	byMonth := make(map[string]*dto.MonthlyMovementEntry)
	var order []string

	entry := func(month string) *dto.MonthlyMovementEntry {
		e, ok := byMonth[month]
		if !ok {
			e = &dto.MonthlyMovementEntry{
				Month:             month,
				CollectionsWeight: decimal.Zero,
				SalesWeight:       decimal.Zero,
				CollectionsValue:  decimal.Zero,
				SalesValue:        decimal.Zero,
			}
			byMonth[month] = e
			order = append(order, month)
		}
		return e
	}

	for i := range collections {
		c := &collections[i]
		e := entry(c.DateTime.UTC().Format("2006-01"))
		e.CollectionsWeight = e.CollectionsWeight.Add(ToKilograms(c.Weight, rowUnit(c.Product)))
		e.CollectionsValue = e.CollectionsValue.Add(c.Value)
	}
	for i := range sales {
		sl := &sales[i]
		e := entry(sl.DateTime.UTC().Format("2006-01"))
		e.SalesWeight = e.SalesWeight.Add(ToKilograms(sl.Weight, rowUnit(sl.Product)))
		e.SalesValue = e.SalesValue.Add(sl.Value)
	}

	out := make([]dto.MonthlyMovementEntry, 0, len(order))
	for _, month := range order {
		e := byMonth[month]
		e.CollectionsWeight = RoundWeight(e.CollectionsWeight)
		e.SalesWeight = RoundWeight(e.SalesWeight)
		out = append(out, *e)
	}
	return out, nil
}

func (s *dashboardService) CollectionsBySupplier(ctx context.Context) ([]dto.CollectionsBySupplierEntry, error) {
	collections, err := s.collectionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	bySupplier := make(map[uint]*dto.CollectionsBySupplierEntry)
	var ids []uint
	for i := range collections {
		c := &collections[i]
		e, ok := bySupplier[c.SupplierID]
		if !ok {
			e = &dto.CollectionsBySupplierEntry{
				SupplierID:  c.SupplierID,
				TotalWeight: decimal.Zero,
				TotalValue:  decimal.Zero,
			}
			bySupplier[c.SupplierID] = e
			ids = append(ids, c.SupplierID)
		}
		e.TotalCollections++
		// Raw weight, unconverted.
		e.TotalWeight = e.TotalWeight.Add(c.Weight)
		e.TotalValue = e.TotalValue.Add(c.Value)
	}

	suppliers, err := s.supplierRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(suppliers))
	for i := range suppliers {
		names[suppliers[i].ID] = suppliers[i].Name
	}

	out := make([]dto.CollectionsBySupplierEntry, 0, len(ids))
	for _, id := range ids {
		e := bySupplier[id]
		e.SupplierName = names[id]
		out = append(out, *e)
	}
	// Stable sort so equal counts keep first-encountered order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalCollections > out[j].TotalCollections
	})
	return out, nil
}

func (s *dashboardService) SalesByProductType(ctx context.Context) ([]dto.SalesByProductTypeEntry, error) {
	sales, err := s.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	type group struct {
		count  int
		weight decimal.Decimal
		value  decimal.Decimal
	}
	byProduct := make(map[uint]*group)
	var ids []uint
	for i := range sales {
		sl := &sales[i]
		g, ok := byProduct[sl.ProductID]
		if !ok {
			g = &group{weight: decimal.Zero, value: decimal.Zero}
			byProduct[sl.ProductID] = g
			ids = append(ids, sl.ProductID)
		}
		g.count++
		g.weight = g.weight.Add(sl.Weight)
		g.value = g.value.Add(sl.Value)
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	lookup := make(map[uint]*model.ProductType, len(products))
	for i := range products {
		lookup[products[i].ID] = &products[i]
	}

	out := make([]dto.SalesByProductTypeEntry, 0, len(ids))
	for _, id := range ids {
		g := byProduct[id]
		p := lookup[id]
		unit := rowUnit(p)
		name := ""
		if p != nil {
			name = p.Name
		}
		out = append(out, dto.SalesByProductTypeEntry{
			ProductID:       id,
			ProductName:     name,
			Unit:            unit,
			TotalWeight:     RoundWeight(g.weight),
			TotalWeightInKg: RoundWeight(ToKilograms(g.weight, unit)),
			TotalValue:      g.value,
			TotalSales:      g.count,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalWeightInKg.GreaterThan(out[j].TotalWeightInKg)
	})
	return out, nil
}
