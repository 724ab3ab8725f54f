package repository

import (
	"context"

	"renascer/internal/model"

	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(ctx context.Context, c *model.Client) error
	FindByID(ctx context.Context, id uint) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Update(ctx context.Context, c *model.Client) error
	Delete(ctx context.Context, id uint) error
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) ClientRepository { return &clientRepo{db: db} }

func (r *clientRepo) Create(ctx context.Context, c *model.Client) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *clientRepo) FindByID(ctx context.Context, id uint) (*model.Client, error) {
	var c model.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

// List returns clients ordered by name ascending.
func (r *clientRepo) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.WithContext(ctx).Order("name ASC").Find(&clients).Error
	return clients, translate(err)
}

func (r *clientRepo) Update(ctx context.Context, c *model.Client) error {
	return translate(r.db.WithContext(ctx).Save(c).Error)
}

func (r *clientRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Client{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
