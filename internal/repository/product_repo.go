package repository

import (
	"context"

	"go-delivery-api/internal/listing"
	"go-delivery-api/internal/model"

	"gorm.io/gorm"
)

// ProductFilter holds the optional listing filters. Nil or blank fields are
// not applied.
type ProductFilter struct {
	CategoryID      *uint
	StoreID         *uint
	Term            string
	IncludeInactive bool
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter, page listing.Page) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// productQuery applies filters in a fixed order: category, store, term
func productQuery(db *gorm.DB, filter ProductFilter) *gorm.DB {
	q := db.Model(&model.Product{})
	if !filter.IncludeInactive {
		q = q.Where("active = ?", true)
	}
	return q.Scopes(
		listing.Equal("category_id", filter.CategoryID),
		listing.Equal("store_id", filter.StoreID),
		listing.Contains("name", filter.Term),
	)
}

func (r *productRepo) List(ctx context.Context, filter ProductFilter, page listing.Page) ([]model.Product, int64, error) {
	products := []model.Product{}
	total, err := listing.FindPage(productQuery(r.db.WithContext(ctx), filter), "id ASC", page, &products)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Update overwrites every mutable column, zero values included
func (r *productRepo) Update(ctx context.Context, product *model.Product) error {
	columns := append([]string{"updated_at"}, model.ProductColumns...)
	return r.db.WithContext(ctx).Model(product).Select(columns).Updates(product).Error
}

// Delete reports whether a row was removed
func (r *productRepo) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
