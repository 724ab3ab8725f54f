package repository

import (
	"context"
	"time"

	"renascer/internal/model"

	"gorm.io/gorm"
)

type CollectionRepository interface {
	Create(ctx context.Context, c *model.Collection) error
	// FindByID loads the collection with its supplier and product.
	FindByID(ctx context.Context, id uint) (*model.Collection, error)
	// List returns all collections newest-first with supplier and product loaded.
	List(ctx context.Context) ([]model.Collection, error)
	// ListByDateRange returns collections with from <= date_time <= to,
	// ascending, with supplier and product loaded.
	ListByDateRange(ctx context.Context, from, to time.Time) ([]model.Collection, error)
	// ListByStatusWithProduct returns collections in the given status with
	// only the product association loaded, for unit-normalized weight sums.
	ListByStatusWithProduct(ctx context.Context, status string) ([]model.Collection, error)
	// ListAscWithProduct returns all collections oldest-first with the
	// product loaded, for the monthly rollup.
	ListAscWithProduct(ctx context.Context) ([]model.Collection, error)
	// ListAll returns bare rows for client-side grouping.
	ListAll(ctx context.Context) ([]model.Collection, error)
	Update(ctx context.Context, c *model.Collection) error
	Delete(ctx context.Context, id uint) error
}

type collectionRepo struct{ db *gorm.DB }

func NewCollectionRepository(db *gorm.DB) CollectionRepository { return &collectionRepo{db: db} }

func (r *collectionRepo) Create(ctx context.Context, c *model.Collection) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *collectionRepo) FindByID(ctx context.Context, id uint) (*model.Collection, error) {
	var c model.Collection
	err := r.db.WithContext(ctx).Preload("Supplier").Preload("Product").First(&c, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *collectionRepo) List(ctx context.Context) ([]model.Collection, error) {
	var collections []model.Collection
	err := r.db.WithContext(ctx).
		Preload("Supplier").Preload("Product").
		Order("date_time DESC").
		Find(&collections).Error
	return collections, translate(err)
}

func (r *collectionRepo) ListByDateRange(ctx context.Context, from, to time.Time) ([]model.Collection, error) {
	var collections []model.Collection
	err := r.db.WithContext(ctx).
		Preload("Supplier").Preload("Product").
		Where("date_time >= ? AND date_time <= ?", from, to).
		Order("date_time ASC").
		Find(&collections).Error
	return collections, translate(err)
}

func (r *collectionRepo) ListByStatusWithProduct(ctx context.Context, status string) ([]model.Collection, error) {
	var collections []model.Collection
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("status = ?", status).
		Find(&collections).Error
	return collections, translate(err)
}

func (r *collectionRepo) ListAscWithProduct(ctx context.Context) ([]model.Collection, error) {
	var collections []model.Collection
	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("date_time ASC").
		Find(&collections).Error
	return collections, translate(err)
}

func (r *collectionRepo) ListAll(ctx context.Context) ([]model.Collection, error) {
	var collections []model.Collection
	err := r.db.WithContext(ctx).Find(&collections).Error
	return collections, translate(err)
}

func (r *collectionRepo) Update(ctx context.Context, c *model.Collection) error {
	return translate(r.db.WithContext(ctx).Save(c).Error)
}

func (r *collectionRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Collection{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
