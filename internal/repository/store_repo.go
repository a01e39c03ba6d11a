package repository

import (
	"context"

	"go-delivery-api/internal/model"

	"gorm.io/gorm"
)

type StoreRepository interface {
	FindAll(ctx context.Context) ([]model.Store, error)
	FindByOwner(ctx context.Context, userID uint) ([]model.Store, error)
}

type storeRepo struct {
	db *gorm.DB
}

func NewStoreRepo(db *gorm.DB) StoreRepository {
	return &storeRepo{db}
}

func (r *storeRepo) FindAll(ctx context.Context) ([]model.Store, error) {
	stores := []model.Store{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&stores).Error
	return stores, err
}

func (r *storeRepo) FindByOwner(ctx context.Context, userID uint) ([]model.Store, error) {
	stores := []model.Store{}
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&stores).Error
	return stores, err
}
