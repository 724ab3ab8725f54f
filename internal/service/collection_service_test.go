package service

import (
	"context"
	"testing"
	"time"

	"renascer/internal/dto"
	"renascer/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCollectionSvc() (CollectionService, *stubCollectionRepo, *stubSupplierRepo, *stubProductTypeRepo) {
	repo := newStubCollectionRepo()
	supplierRepo := newStubSupplierRepo()
	productRepo := newStubProductTypeRepo()
	svc := NewCollectionService(repo, supplierRepo, productRepo)
	return svc, repo, supplierRepo, productRepo
}

func seedCollection(repo *stubCollectionRepo, supplier *model.Supplier, product *model.ProductType, status string, at time.Time, weight, value string) *model.Collection {
	c := &model.Collection{
		ID:         repo.nextID,
		SupplierID: supplier.ID,
		ProductID:  product.ID,
		Status:     status,
		DateTime:   at,
		Location:   "North Zone Warehouse",
		Weight:     decimal.RequireFromString(weight),
		Value:      decimal.RequireFromString(value),
		Supplier:   supplier,
		Product:    product,
	}
	repo.nextID++
	repo.collections[c.ID] = c
	return c
}

func TestCreateCollection_DefaultsToScheduled(t *testing.T) {
	svc, _, supplierRepo, productRepo := buildCollectionSvc()
	supplier := seedSupplier(supplierRepo, "EcoRecycle Solutions", "12.345.678/0001-99", "contact@ecorecycle.com")
	product := seedProductType(productRepo, "Recycled Plastic Pellets", model.UnitKilogram)

	resp, err := svc.Create(context.Background(), dto.CreateCollectionRequest{
		SupplierID: supplier.ID,
		ProductID:  product.ID,
		DateTime:   time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC),
		Location:   "Industrial District, São Paulo",
		Weight:     decimal.RequireFromString("250.5"),
		Value:      decimal.RequireFromString("1250.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, model.StatusScheduled, resp.Status)
	require.NotNil(t, resp.Supplier)
	assert.Equal(t, "EcoRecycle Solutions", resp.Supplier.Name)
	require.NotNil(t, resp.Product)
	assert.Equal(t, model.UnitKilogram, resp.Product.Unit)
}

func TestCreateCollection_SupplierMissing(t *testing.T) {
	svc, _, _, productRepo := buildCollectionSvc()
	product := seedProductType(productRepo, "Recycled Paper Pulp", model.UnitKilogram)

	_, err := svc.Create(context.Background(), dto.CreateCollectionRequest{
		SupplierID: 99,
		ProductID:  product.ID,
		DateTime:   time.Now(),
		Location:   "Downtown Collection Center",
		Weight:     decimal.NewFromInt(10),
		Value:      decimal.NewFromInt(50),
	})

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Supplier not found", nf.Error())
}

func TestCreateCollection_ProductMissing(t *testing.T) {
	svc, _, supplierRepo, _ := buildCollectionSvc()
	supplier := seedSupplier(supplierRepo, "João Silva", "123.456.789-00", "joao.silva@email.com")

	_, err := svc.Create(context.Background(), dto.CreateCollectionRequest{
		SupplierID: supplier.ID,
		ProductID:  99,
		DateTime:   time.Now(),
		Location:   "Downtown Collection Center",
		Weight:     decimal.NewFromInt(10),
		Value:      decimal.NewFromInt(50),
	})

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Product type not found", nf.Error())
}

func TestUpdateCollection_NoFields(t *testing.T) {
	svc, repo, supplierRepo, productRepo := buildCollectionSvc()
	supplier := seedSupplier(supplierRepo, "Maria Santos", "987.654.321-11", "maria.santos@email.com")
	product := seedProductType(productRepo, "Aluminum Sheets", model.UnitKilogram)
	c := seedCollection(repo, supplier, product, model.StatusScheduled, time.Now(), "75.2", "2256.00")

	_, err := svc.Update(context.Background(), c.ID, dto.UpdateCollectionRequest{})

	var bad *BadRequestError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "No fields to update", bad.Msg)
}

func TestUpdateCollectionStatus_AnyTransitionAllowed(t *testing.T) {
	svc, repo, supplierRepo, productRepo := buildCollectionSvc()
	supplier := seedSupplier(supplierRepo, "Green Materials Inc.", "98.765.432/0001-88", "info@greenmaterials.com")
	product := seedProductType(productRepo, "Copper Wire", model.UnitGram)
	c := seedCollection(repo, supplier, product, model.StatusCollected, time.Now(), "15.8", "790.00")

	resp, err := svc.UpdateStatus(context.Background(), c.ID, model.StatusScheduled)

	require.NoError(t, err)
	assert.Equal(t, model.StatusScheduled, resp.Status)
	assert.Equal(t, model.StatusScheduled, repo.collections[c.ID].Status)
}

func TestCollectionsByDate_WindowBoundaries(t *testing.T) {
	svc, repo, supplierRepo, productRepo := buildCollectionSvc()
	supplier := seedSupplier(supplierRepo, "EcoRecycle Solutions", "12.345.678/0001-99", "contact@ecorecycle.com")
	product := seedProductType(productRepo, "Glass Cullet", model.UnitKilogram)

	seedCollection(repo, supplier, product, model.StatusScheduled,
		time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC), "10", "100")
	seedCollection(repo, supplier, product, model.StatusConfirmed,
		time.Date(2025, 10, 5, 23, 59, 59, 999000000, time.UTC), "20", "200")
	// Next day midnight falls outside the window
	seedCollection(repo, supplier, product, model.StatusCollected,
		time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC), "30", "300")

	resp, err := svc.ByDate(context.Background(), "2025-10-05")

	require.NoError(t, err)
	assert.Equal(t, "2025-10-05", resp.Date)
	require.Len(t, resp.Collections, 2)
	assert.Equal(t, 2, resp.Summary.TotalCollections)
	assert.True(t, resp.Summary.TotalWeight.Equal(decimal.NewFromInt(30)), "got %s", resp.Summary.TotalWeight)
	assert.True(t, resp.Summary.TotalValue.Equal(decimal.NewFromInt(300)), "got %s", resp.Summary.TotalValue)
	assert.Equal(t, 1, resp.Summary.ByStatus.Scheduled)
	assert.Equal(t, 1, resp.Summary.ByStatus.Confirmed)
	assert.Equal(t, 0, resp.Summary.ByStatus.Collected)
}

func TestCollectionsByDate_EmptyDay(t *testing.T) {
	svc, _, _, _ := buildCollectionSvc()

	resp, err := svc.ByDate(context.Background(), "2025-01-15")

	require.NoError(t, err)
	assert.Empty(t, resp.Collections)
	assert.Equal(t, 0, resp.Summary.TotalCollections)
	assert.True(t, resp.Summary.TotalWeight.Equal(decimal.Zero))
}

func TestCollectionsByDate_BadFormat(t *testing.T) {
	svc, _, _, _ := buildCollectionSvc()

	for _, date := range []string{"2025-1-05", "20251005", "yesterday", "2025/10/05"} {
		_, err := svc.ByDate(context.Background(), date)
		var bad *BadRequestError
		require.ErrorAs(t, err, &bad, "date %q", date)
		assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", bad.Msg)
	}
}

func TestCollectionsByDate_ImpossibleDate(t *testing.T) {
	svc, _, _, _ := buildCollectionSvc()

	for _, date := range []string{"2025-13-01", "2025-02-30"} {
		_, err := svc.ByDate(context.Background(), date)
		var bad *BadRequestError
		require.ErrorAs(t, err, &bad, "date %q", date)
		assert.Equal(t, "Invalid date", bad.Msg)
	}
}

func TestDeleteCollection_NotFound(t *testing.T) {
	svc, _, _, _ := buildCollectionSvc()

	err := svc.Delete(context.Background(), 123)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Collection not found", nf.Error())
}
