package repository

import (
	"context"

	"renascer/internal/model"

	"gorm.io/gorm"
)

// SupplierRepository defines the data access contract for suppliers.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) error
	FindByID(ctx context.Context, id uint) (*model.Supplier, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	Update(ctx context.Context, s *model.Supplier) error
	Delete(ctx context.Context, id uint) error
}

type supplierRepo struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) SupplierRepository { return &supplierRepo{db: db} }

func (r *supplierRepo) Create(ctx context.Context, s *model.Supplier) error {
	return translate(r.db.WithContext(ctx).Create(s).Error)
}

func (r *supplierRepo) FindByID(ctx context.Context, id uint) (*model.Supplier, error) {
	var s model.Supplier
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *supplierRepo) FindByIDs(ctx context.Context, ids []uint) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&suppliers).Error
	return suppliers, translate(err)
}

func (r *supplierRepo) List(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.WithContext(ctx).Order("id DESC").Find(&suppliers).Error
	return suppliers, translate(err)
}

func (r *supplierRepo) Update(ctx context.Context, s *model.Supplier) error {
	return translate(r.db.WithContext(ctx).Save(s).Error)
}

func (r *supplierRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Supplier{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
