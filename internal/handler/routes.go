package handler

import (
	"go-delivery-api/internal/middleware"
	"go-delivery-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Catalog   *CatalogHandler
	Route     *RouteHandler
	Planning  *PlanningHandler
	User      *UserHandler
	Auth      *AuthHandler
	Dashboard *DashboardHandler
}

// Register mounts every /api route on app
func Register(app *fiber.App, h Handlers, signer *jwt.Signer) {
	api := app.Group("/api", middleware.OptionalAuth(signer))

	// Users & auth
	api.Get("/users", h.User.GetUsers)
	api.Post("/register-user", h.User.RegisterUser)
	api.Post("/login", h.Auth.Login)
	api.Get("/me", middleware.RequireAuth(signer), h.Auth.Me)
	api.Get("/my-store", h.Catalog.GetMyStores)

	// Catalog
	api.Get("/categories", h.Catalog.GetCategories)
	api.Get("/stores", h.Catalog.GetStores)
	api.Get("/products", h.Catalog.GetProducts)
	api.Get("/products-admin", h.Catalog.GetProductsAdmin)
	api.Get("/product/:id", h.Catalog.GetProduct)
	api.Post("/create-product", h.Catalog.CreateProduct)
	api.Put("/update-product/:id", h.Catalog.UpdateProduct)
	api.Delete("/delete-product/:id", h.Catalog.DeleteProduct)

	// Route planning
	api.Post("/optimize-routes", h.Planning.OptimizeRoutes)
	api.Post("/route-info", h.Planning.RouteInfo)
	api.Post("/geocode", h.Planning.Geocode)
	api.Post("/reverse-geocode", h.Planning.ReverseGeocode)
	api.Post("/save-route", h.Route.SaveRoute)
	api.Get("/routes", h.Route.GetRoutes)
	api.Get("/routes/:id", h.Route.GetRoute)

	api.Get("/dashboard/stats", h.Dashboard.GetDashboardStats)
}
