package repository

import (
	"context"

	"renascer/internal/model"

	"gorm.io/gorm"
)

type CollectionPointRepository interface {
	Create(ctx context.Context, p *model.CollectionPoint) error
	FindByID(ctx context.Context, id uint) (*model.CollectionPoint, error)
	List(ctx context.Context) ([]model.CollectionPoint, error)
	Update(ctx context.Context, p *model.CollectionPoint) error
	Delete(ctx context.Context, id uint) error
}

type collectionPointRepo struct{ db *gorm.DB }

func NewCollectionPointRepository(db *gorm.DB) CollectionPointRepository {
	return &collectionPointRepo{db: db}
}

func (r *collectionPointRepo) Create(ctx context.Context, p *model.CollectionPoint) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *collectionPointRepo) FindByID(ctx context.Context, id uint) (*model.CollectionPoint, error) {
	var p model.CollectionPoint
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *collectionPointRepo) List(ctx context.Context) ([]model.CollectionPoint, error) {
	var points []model.CollectionPoint
	err := r.db.WithContext(ctx).Order("id DESC").Find(&points).Error
	return points, translate(err)
}

func (r *collectionPointRepo) Update(ctx context.Context, p *model.CollectionPoint) error {
	return translate(r.db.WithContext(ctx).Save(p).Error)
}

func (r *collectionPointRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.CollectionPoint{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
