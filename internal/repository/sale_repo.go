package repository

import (
	"context"

	"renascer/internal/model"

	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(ctx context.Context, s *model.Sale) error
	// FindByID loads the sale with its client and product.
	FindByID(ctx context.Context, id uint) (*model.Sale, error)
	// List returns all sales newest-first with client and product loaded.
	List(ctx context.Context) ([]model.Sale, error)
	// ListAscWithProduct returns all sales oldest-first with the product
	// loaded, for unit-normalized weight sums and the monthly rollup.
	ListAscWithProduct(ctx context.Context) ([]model.Sale, error)
	// ListAll returns bare rows for client-side grouping.
	ListAll(ctx context.Context) ([]model.Sale, error)
	Update(ctx context.Context, s *model.Sale) error
	Delete(ctx context.Context, id uint) error
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) Create(ctx context.Context, s *model.Sale) error {
	return translate(r.db.WithContext(ctx).Create(s).Error)
}

func (r *saleRepo) FindByID(ctx context.Context, id uint) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Client").Preload("Product").First(&s, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *saleRepo) List(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Preload("Client").Preload("Product").
		Order("date_time DESC").
		Find(&sales).Error
	return sales, translate(err)
}

func (r *saleRepo) ListAscWithProduct(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).
		Preload("Product").
		Order("date_time ASC").
		Find(&sales).Error
	return sales, translate(err)
}

func (r *saleRepo) ListAll(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Find(&sales).Error
	return sales, translate(err)
}

func (r *saleRepo) Update(ctx context.Context, s *model.Sale) error {
	return translate(r.db.WithContext(ctx).Save(s).Error)
}

func (r *saleRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Sale{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
