package handler

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go-delivery-api/internal/middleware"
	"go-delivery-api/internal/repository"
	"go-delivery-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/valyala/fasthttp"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// GetProducts lists active products
// GET /api/products?categoryId=&storeId=&term=&page=
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	return h.listProducts(c, false)
}

// GetProductsAdmin lists every product, inactive included
// GET /api/products-admin
func (h *CatalogHandler) GetProductsAdmin(c *fiber.Ctx) error {
	return h.listProducts(c, true)
}

func (h *CatalogHandler) listProducts(c *fiber.Ctx, includeInactive bool) error {
	filter, err := productFilter(c)
	if err != nil {
		return respondError(c, err, "Failed to fetch products")
	}
	filter.IncludeInactive = includeInactive

	page, err := pageFromQuery(c)
	if err != nil {
		return respondError(c, err, "Failed to fetch products")
	}

	result, err := h.service.ListProducts(c.UserContext(), filter, page)
	if err != nil {
		return respondError(c, err, "Failed to fetch products")
	}
	return c.JSON(fiber.Map{"data": result})
}

func productFilter(c *fiber.Ctx) (repository.ProductFilter, error) {
	var filter repository.ProductFilter

	// productsCategoryId is the older spelling still sent by some clients
	rawCategory := c.Query("categoryId", c.Query("productsCategoryId"))
	categoryID, err := optionalUint("categoryId", rawCategory)
	if err != nil {
		return filter, err
	}
	storeID, err := optionalUint("storeId", c.Query("storeId"))
	if err != nil {
		return filter, err
	}

	filter.CategoryID = categoryID
	filter.StoreID = storeID
	filter.Term = c.Query("term")
	return filter, nil
}

// GET /api/product/:id
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Failed to fetch product")
	}

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, "Failed to fetch product")
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"product": product}})
}

// productForm reads the multipart product fields. Blank numeric fields become
// zero, matching the full-overwrite update semantics.
func productForm(c *fiber.Ctx) (*service.ProductInput, error) {
	in := &service.ProductInput{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Description: c.FormValue("description"),
	}

	if raw := strings.TrimSpace(c.FormValue("price")); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, invalidParam("price", raw)
		}
		in.Price = price
	}

	if raw := strings.TrimSpace(c.FormValue("stock")); raw != "" {
		if !isDigits(raw) {
			return nil, invalidParam("stock", raw)
		}
		stock, err := decimalUint(raw)
		if err != nil {
			return nil, invalidParam("stock", raw)
		}
		in.Stock = int(stock)
	}

	if raw := strings.TrimSpace(c.FormValue("active")); raw != "" {
		active, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, invalidParam("active", raw)
		}
		in.Active = active
	}

	rawCategory := c.FormValue("productsCategoryId", c.FormValue("categoryId"))
	categoryID, err := optionalUint("productsCategoryId", rawCategory)
	if err != nil {
		return nil, err
	}
	storeID, err := optionalUint("storeId", c.FormValue("storeId"))
	if err != nil {
		return nil, err
	}
	in.CategoryID = categoryID
	in.StoreID = storeID

	image, err := formImage(c)
	if err != nil {
		return nil, err
	}
	in.Image = image
	return in, nil
}

// formImage returns nil when the request carries no image part
func formImage(c *fiber.Ctx) (*service.Image, error) {
	fh, err := c.FormFile("image")
	if errors.Is(err, fasthttp.ErrMissingFile) || errors.Is(err, fasthttp.ErrNoMultipartForm) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable image upload", service.ErrBadRequest)
	}
	if fh == nil {
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &service.Image{Data: data, ContentType: contentType}, nil
}

// POST /api/create-product (multipart, optional "image")
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	in, err := productForm(c)
	if err != nil {
		return respondError(c, err, "Failed to create product")
	}

	product, err := h.service.CreateProduct(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, "Failed to create product")
	}
	return c.Status(201).JSON(fiber.Map{"data": product})
}

// PUT /api/update-product/:id (multipart, optional "image")
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Failed to update product")
	}

	in, err := productForm(c)
	if err != nil {
		// an unknown id is reported ahead of form errors
		if _, lookupErr := h.service.GetProduct(c.UserContext(), id); lookupErr != nil {
			return respondError(c, lookupErr, "Failed to update product")
		}
		return respondError(c, err, "Failed to update product")
	}

	product, err := h.service.UpdateProduct(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err, "Failed to update product")
	}
	return c.JSON(fiber.Map{"data": product})
}

// DELETE /api/delete-product/:id
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err, "Failed to delete product")
	}

	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return respondError(c, err, "Failed to delete product")
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		return respondError(c, err, "Failed to fetch categories")
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"categories": categories, "total": len(categories)}})
}

func (h *CatalogHandler) GetStores(c *fiber.Ctx) error {
	stores, err := h.service.ListStores(c.UserContext())
	if err != nil {
		return respondError(c, err, "Failed to fetch stores")
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"stores": stores, "total": len(stores)}})
}

// GetMyStores lists stores owned by ?userId, or by the authenticated user
// GET /api/my-store
func (h *CatalogHandler) GetMyStores(c *fiber.Ctx) error {
	userID, err := optionalUint("userId", c.Query("userId"))
	if err != nil {
		return respondError(c, err, "Failed to fetch stores")
	}
	if userID == nil {
		if id, ok := middleware.UserID(c); ok {
			userID = &id
		}
	}
	if userID == nil {
		return c.Status(400).JSON(fiber.Map{"error": "userId is required"})
	}

	stores, err := h.service.MyStores(c.UserContext(), *userID)
	if err != nil {
		return respondError(c, err, "Failed to fetch stores")
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"stores": stores, "total": len(stores)}})
}
