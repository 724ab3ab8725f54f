package repository

import (
	"context"

	"renascer/internal/model"

	"gorm.io/gorm"
)

type ProductTypeRepository interface {
	Create(ctx context.Context, p *model.ProductType) error
	FindByID(ctx context.Context, id uint) (*model.ProductType, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.ProductType, error)
	List(ctx context.Context) ([]model.ProductType, error)
	Update(ctx context.Context, p *model.ProductType) error
	Delete(ctx context.Context, id uint) error
}

type productTypeRepo struct{ db *gorm.DB }

func NewProductTypeRepository(db *gorm.DB) ProductTypeRepository { return &productTypeRepo{db: db} }

func (r *productTypeRepo) Create(ctx context.Context, p *model.ProductType) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *productTypeRepo) FindByID(ctx context.Context, id uint) (*model.ProductType, error) {
	var p model.ProductType
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *productTypeRepo) FindByIDs(ctx context.Context, ids []uint) ([]model.ProductType, error) {
	var products []model.ProductType
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	return products, translate(err)
}

func (r *productTypeRepo) List(ctx context.Context) ([]model.ProductType, error) {
	var products []model.ProductType
	err := r.db.WithContext(ctx).Order("id DESC").Find(&products).Error
	return products, translate(err)
}

func (r *productTypeRepo) Update(ctx context.Context, p *model.ProductType) error {
	return translate(r.db.WithContext(ctx).Save(p).Error)
}

func (r *productTypeRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.ProductType{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
