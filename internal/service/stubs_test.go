package service

import (
	"context"
	"sort"
	"time"

	"renascer/internal/model"
	"renascer/internal/repository"
)

// In-memory repository stubs. They return the repository package's sentinel
// errors so services exercise the same errors.Is paths as production code.

// ── SupplierRepository stub ──────────────────────────────────────────────────

type stubSupplierRepo struct {
	suppliers map[uint]*model.Supplier
	nextID    uint
	// referenced marks suppliers whose delete must fail with ErrRestricted,
	// standing in for the collections foreign key.
	referenced map[uint]bool
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{
		suppliers:  make(map[uint]*model.Supplier),
		nextID:     1,
		referenced: make(map[uint]bool),
	}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	for _, existing := range r.suppliers {
		if existing.TaxID == s.TaxID || existing.Email == s.Email {
			return repository.ErrDuplicate
		}
	}
	s.ID = r.nextID
	r.nextID++
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uint) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSupplierRepo) FindByIDs(_ context.Context, ids []uint) ([]model.Supplier, error) {
	var result []model.Supplier
	for _, id := range ids {
		if s, ok := r.suppliers[id]; ok {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	result := make([]model.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	for _, existing := range r.suppliers {
		if existing.ID != s.ID && (existing.TaxID == s.TaxID || existing.Email == s.Email) {
			return repository.ErrDuplicate
		}
	}
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.suppliers[id]; !ok {
		return repository.ErrNotFound
	}
	if r.referenced[id] {
		return repository.ErrRestricted
	}
	delete(r.suppliers, id)
	return nil
}

var _ repository.SupplierRepository = (*stubSupplierRepo)(nil)

// ── ClientRepository stub ────────────────────────────────────────────────────

type stubClientRepo struct {
	clients    map[uint]*model.Client
	nextID     uint
	referenced map[uint]bool
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{
		clients:    make(map[uint]*model.Client),
		nextID:     1,
		referenced: make(map[uint]bool),
	}
}

func (r *stubClientRepo) Create(_ context.Context, c *model.Client) error {
	for _, existing := range r.clients {
		if existing.TaxID == c.TaxID || existing.Email == c.Email {
			return repository.ErrDuplicate
		}
	}
	c.ID = r.nextID
	r.nextID++
	r.clients[c.ID] = c
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id uint) (*model.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubClientRepo) List(_ context.Context) ([]model.Client, error) {
	result := make([]model.Client, 0, len(r.clients))
	for _, c := range r.clients {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *stubClientRepo) Update(_ context.Context, c *model.Client) error {
	for _, existing := range r.clients {
		if existing.ID != c.ID && (existing.TaxID == c.TaxID || existing.Email == c.Email) {
			return repository.ErrDuplicate
		}
	}
	r.clients[c.ID] = c
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.clients[id]; !ok {
		return repository.ErrNotFound
	}
	if r.referenced[id] {
		return repository.ErrRestricted
	}
	delete(r.clients, id)
	return nil
}

var _ repository.ClientRepository = (*stubClientRepo)(nil)

// ── CollectionPointRepository stub ───────────────────────────────────────────

type stubCollectionPointRepo struct {
	points map[uint]*model.CollectionPoint
	nextID uint
}

func newStubCollectionPointRepo() *stubCollectionPointRepo {
	return &stubCollectionPointRepo{points: make(map[uint]*model.CollectionPoint), nextID: 1}
}

func (r *stubCollectionPointRepo) Create(_ context.Context, p *model.CollectionPoint) error {
	for _, existing := range r.points {
		if existing.Email == p.Email {
			return repository.ErrDuplicate
		}
	}
	p.ID = r.nextID
	r.nextID++
	r.points[p.ID] = p
	return nil
}

func (r *stubCollectionPointRepo) FindByID(_ context.Context, id uint) (*model.CollectionPoint, error) {
	p, ok := r.points[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubCollectionPointRepo) List(_ context.Context) ([]model.CollectionPoint, error) {
	result := make([]model.CollectionPoint, 0, len(r.points))
	for _, p := range r.points {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *stubCollectionPointRepo) Update(_ context.Context, p *model.CollectionPoint) error {
	for _, existing := range r.points {
		if existing.ID != p.ID && existing.Email == p.Email {
			return repository.ErrDuplicate
		}
	}
	r.points[p.ID] = p
	return nil
}

func (r *stubCollectionPointRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.points[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.points, id)
	return nil
}

var _ repository.CollectionPointRepository = (*stubCollectionPointRepo)(nil)

// ── ProductTypeRepository stub ───────────────────────────────────────────────

type stubProductTypeRepo struct {
	products   map[uint]*model.ProductType
	nextID     uint
	referenced map[uint]bool
}

func newStubProductTypeRepo() *stubProductTypeRepo {
	return &stubProductTypeRepo{
		products:   make(map[uint]*model.ProductType),
		nextID:     1,
		referenced: make(map[uint]bool),
	}
}

func (r *stubProductTypeRepo) Create(_ context.Context, p *model.ProductType) error {
	for _, existing := range r.products {
		if existing.Name == p.Name {
			return repository.ErrDuplicate
		}
	}
	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = p
	return nil
}

func (r *stubProductTypeRepo) FindByID(_ context.Context, id uint) (*model.ProductType, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductTypeRepo) FindByIDs(_ context.Context, ids []uint) ([]model.ProductType, error) {
	var result []model.ProductType
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *stubProductTypeRepo) List(_ context.Context) ([]model.ProductType, error) {
	result := make([]model.ProductType, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *stubProductTypeRepo) Update(_ context.Context, p *model.ProductType) error {
	for _, existing := range r.products {
		if existing.ID != p.ID && existing.Name == p.Name {
			return repository.ErrDuplicate
		}
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductTypeRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.products[id]; !ok {
		return repository.ErrNotFound
	}
	if r.referenced[id] {
		return repository.ErrRestricted
	}
	delete(r.products, id)
	return nil
}

var _ repository.ProductTypeRepository = (*stubProductTypeRepo)(nil)

// ── CollectionRepository stub ────────────────────────────────────────────────

type stubCollectionRepo struct {
	collections map[uint]*model.Collection
	nextID      uint
}

func newStubCollectionRepo() *stubCollectionRepo {
	return &stubCollectionRepo{collections: make(map[uint]*model.Collection), nextID: 1}
}

func (r *stubCollectionRepo) Create(_ context.Context, c *model.Collection) error {
	c.ID = r.nextID
	r.nextID++
	r.collections[c.ID] = c
	return nil
}

func (r *stubCollectionRepo) FindByID(_ context.Context, id uint) (*model.Collection, error) {
	c, ok := r.collections[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCollectionRepo) all() []model.Collection {
	result := make([]model.Collection, 0, len(r.collections))
	ids := make([]uint, 0, len(r.collections))
	for id := range r.collections {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		result = append(result, *r.collections[id])
	}
	return result
}

func (r *stubCollectionRepo) List(_ context.Context) ([]model.Collection, error) {
	result := r.all()
	sort.SliceStable(result, func(i, j int) bool { return result[i].DateTime.After(result[j].DateTime) })
	return result, nil
}

func (r *stubCollectionRepo) ListByDateRange(_ context.Context, from, to time.Time) ([]model.Collection, error) {
	var result []model.Collection
	for _, c := range r.all() {
		if !c.DateTime.Before(from) && !c.DateTime.After(to) {
			result = append(result, c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].DateTime.Before(result[j].DateTime) })
	return result, nil
}

func (r *stubCollectionRepo) ListByStatusWithProduct(_ context.Context, status string) ([]model.Collection, error) {
	var result []model.Collection
	for _, c := range r.all() {
		if c.Status == status {
			result = append(result, c)
		}
	}
	return result, nil
}

func (r *stubCollectionRepo) ListAscWithProduct(_ context.Context) ([]model.Collection, error) {
	result := r.all()
	sort.SliceStable(result, func(i, j int) bool { return result[i].DateTime.Before(result[j].DateTime) })
	return result, nil
}

func (r *stubCollectionRepo) ListAll(_ context.Context) ([]model.Collection, error) {
	return r.all(), nil
}

func (r *stubCollectionRepo) Update(_ context.Context, c *model.Collection) error {
	if _, ok := r.collections[c.ID]; !ok {
		return repository.ErrNotFound
	}
	r.collections[c.ID] = c
	return nil
}

func (r *stubCollectionRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.collections[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.collections, id)
	return nil
}

var _ repository.CollectionRepository = (*stubCollectionRepo)(nil)

// ── SaleRepository stub ──────────────────────────────────────────────────────

type stubSaleRepo struct {
	sales  map[uint]*model.Sale
	nextID uint
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uint]*model.Sale), nextID: 1}
}

func (r *stubSaleRepo) Create(_ context.Context, s *model.Sale) error {
	s.ID = r.nextID
	r.nextID++
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uint) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSaleRepo) all() []model.Sale {
	result := make([]model.Sale, 0, len(r.sales))
	ids := make([]uint, 0, len(r.sales))
	for id := range r.sales {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		result = append(result, *r.sales[id])
	}
	return result
}

func (r *stubSaleRepo) List(_ context.Context) ([]model.Sale, error) {
	result := r.all()
	sort.SliceStable(result, func(i, j int) bool { return result[i].DateTime.After(result[j].DateTime) })
	return result, nil
}

func (r *stubSaleRepo) ListAscWithProduct(_ context.Context) ([]model.Sale, error) {
	result := r.all()
	sort.SliceStable(result, func(i, j int) bool { return result[i].DateTime.Before(result[j].DateTime) })
	return result, nil
}

func (r *stubSaleRepo) ListAll(_ context.Context) ([]model.Sale, error) {
	return r.all(), nil
}

func (r *stubSaleRepo) Update(_ context.Context, s *model.Sale) error {
	if _, ok := r.sales[s.ID]; !ok {
		return repository.ErrNotFound
	}
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.sales[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.sales, id)
	return nil
}

var _ repository.SaleRepository = (*stubSaleRepo)(nil)
