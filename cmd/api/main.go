package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-delivery-api/internal/config"
	"go-delivery-api/internal/handler"
	"go-delivery-api/internal/maps"
	"go-delivery-api/internal/repository"
	"go-delivery-api/internal/service"
	"go-delivery-api/internal/storage"
	"go-delivery-api/internal/ws"
	"go-delivery-api/pkg/database"
	"go-delivery-api/pkg/jwt"
	applog "go-delivery-api/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zl, err := applog.New(cfg.LogLevel, cfg.IsProduction(), cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zl.Fatal("failed to migrate database", zap.Error(err))
	}

	// 3. Collaborators
	images, err := storage.NewS3Store(context.Background(), cfg.S3.Region, cfg.S3.Bucket, cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey)
	if err != nil {
		zl.Fatal("failed to configure object storage", zap.Error(err))
	}
	mapsClient := maps.NewGoogleClient(cfg.MapsAPIKey, cfg.FleetRoutingURL, cfg.MapsAPIURL, cfg.UpstreamTimeout)
	signer := jwt.NewSigner(cfg.JWTSecret, 24*time.Hour)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	storeRepo := repository.NewStoreRepo(db)
	routeRepo := repository.NewRouteRepo(db)
	userRepo := repository.NewUserRepo(db)
	dashboardRepo := repository.NewDashboardRepo(db)

	handlers := handler.Handlers{
		Catalog:   handler.NewCatalogHandler(service.NewCatalogService(productRepo, categoryRepo, storeRepo, images, wsHub)),
		Route:     handler.NewRouteHandler(service.NewRouteService(routeRepo, wsHub)),
		Planning:  handler.NewPlanningHandler(service.NewPlanningService(mapsClient)),
		User:      handler.NewUserHandler(service.NewUserService(userRepo)),
		Auth:      handler.NewAuthHandler(service.NewAuthService(userRepo, signer)),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(dashboardRepo)),
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   "Delivery API v1.0",
		BodyLimit: 10 * 1024 * 1024, // product images
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 7. Routes
	handler.Register(app, handlers, signer)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(wsHub.Serve))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zl.Panic("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		zl.Error("server forced to shutdown", zap.Error(err))
	}
	wsHub.Stop()
	if err := database.Close(db); err != nil {
		zl.Error("failed to close database", zap.Error(err))
	}

	zl.Info("server exited")
}
