package service

import (
	"context"
	"errors"
	"fmt"

	"go-delivery-api/internal/listing"
	"go-delivery-api/internal/model"
	"go-delivery-api/internal/repository"
	"go-delivery-api/internal/storage"
	"go-delivery-api/pkg/validator"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Image is an uploaded file attached to a product create or update
type Image struct {
	Data        []byte
	ContentType string
}

// ProductInput is the full set of mutable product fields. Update overwrites
// every field, so callers must send all of them.
type ProductInput struct {
	Name        string          `validate:"required,max=255"`
	Description string          `validate:"max=5000"`
	Price       decimal.Decimal `validate:"-"`
	Stock       int             `validate:"gte=0"`
	Active      bool
	CategoryID  *uint
	StoreID     *uint
	Image       *Image `validate:"-"`
}

type ProductPage struct {
	Products   []model.Product    `json:"products"`
	Pagination listing.Pagination `json:"pagination"`
}

type CatalogService interface {
	ListProducts(ctx context.Context, filter repository.ProductFilter, page listing.Page) (*ProductPage, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	CreateProduct(ctx context.Context, in *ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uint, in *ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListStores(ctx context.Context) ([]model.Store, error)
	MyStores(ctx context.Context, userID uint) ([]model.Store, error)
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	storeRepo    repository.StoreRepository
	images       storage.ObjectStore
	events       Publisher
}

func NewCatalogService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository, sRepo repository.StoreRepository, images storage.ObjectStore, events Publisher) CatalogService {
	return &catalogService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		storeRepo:    sRepo,
		images:       images,
		events:       orNop(events),
	}
}

func validateProduct(in *ProductInput) error {
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return badRequest("%s", errs[0].Error())
	}
	if in.Price.IsNegative() {
		return badRequest("price must not be negative")
	}
	return nil
}

func (s *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter, page listing.Page) (*ProductPage, error) {
	products, total, err := s.productRepo.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return &ProductPage{
		Products:   products,
		Pagination: listing.NewPagination(total, page),
	}, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}
	return product, nil
}

// uploadImage stores img under a fresh key derived from name
func (s *catalogService) uploadImage(ctx context.Context, name string, img *Image) (url, key string, err error) {
	key, err = storage.ImageKey(name)
	if err != nil {
		return "", "", fmt.Errorf("generate image key: %w", err)
	}
	url, err = s.images.Put(ctx, key, img.Data, img.ContentType)
	if err != nil {
		return "", "", fmt.Errorf("upload image: %w", err)
	}
	return url, key, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, in *ProductInput) (*model.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Active:      true,
		CategoryID:  in.CategoryID,
		StoreID:     in.StoreID,
	}

	if in.Image != nil {
		url, key, err := s.uploadImage(ctx, in.Name, in.Image)
		if err != nil {
			return nil, err
		}
		product.ImageURL, product.ImageKey = &url, &key
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.events.Publish(EventProductCreated, product)
	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uint, in *ProductInput) (*model.Product, error) {
	current, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateProduct(in); err != nil {
		return nil, err
	}

	product := &model.Product{
		BaseModel:   current.BaseModel,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Active:      in.Active,
		ImageURL:    current.ImageURL,
		ImageKey:    current.ImageKey,
		CategoryID:  in.CategoryID,
		StoreID:     in.StoreID,
	}

	if in.Image != nil {
		if current.ImageKey != nil && *current.ImageKey != "" {
			if err := s.images.Delete(ctx, *current.ImageKey); err != nil {
				return nil, fmt.Errorf("delete previous image: %w", err)
			}
		}
		url, key, err := s.uploadImage(ctx, in.Name, in.Image)
		if err != nil {
			return nil, err
		}
		product.ImageURL, product.ImageKey = &url, &key
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}

	s.events.Publish(EventProductUpdated, product)
	return product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uint) error {
	current, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}

	if current.ImageKey != nil && *current.ImageKey != "" {
		if err := s.images.Delete(ctx, *current.ImageKey); err != nil {
			return fmt.Errorf("delete image: %w", err)
		}
	}

	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if !deleted {
		// Removed concurrently between lookup and delete
		zap.L().Warn("product vanished before delete", zap.Uint("id", id))
		return ErrProductNotFound
	}

	s.events.Publish(EventProductDeleted, map[string]interface{}{"id": id})
	return nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

func (s *catalogService) ListStores(ctx context.Context) ([]model.Store, error) {
	return s.storeRepo.FindAll(ctx)
}

func (s *catalogService) MyStores(ctx context.Context, userID uint) ([]model.Store, error) {
	return s.storeRepo.FindByOwner(ctx, userID)
}
