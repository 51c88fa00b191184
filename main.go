package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/streadway/amqp"
	"gorm.io/gorm"

	"watchstore/internal/config"
	"watchstore/internal/handlers"
	"watchstore/internal/middleware"
	"watchstore/internal/models"
	"watchstore/internal/repositories"
	"watchstore/internal/services"
	"watchstore/pkg/mailer"
	"watchstore/pkg/rabbitmq"
)

// App bundles the HTTP server with the connections it owns.
type App struct {
	Fiber         *fiber.App
	db            *gorm.DB
	mqClient      *rabbitmq.Client
	redisClient   *redis.Client
	productRepo   repositories.ProductRepository
	notifications *services.NotificationService
}

// NewApp connects to the configured backends and wires repositories, services and
// routes. RabbitMQ, Redis and SendGrid are optional and skipped when not configured.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := repositories.OpenDatabase(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	if err := repositories.AutoMigrate(db); err != nil {
		return nil, err
	}

	a := &App{db: db}

	// Interfaces stay nil unless the backend is configured.
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		a.mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			a.Close()
			return nil, err
		}
		publisher = a.mqClient
	}

	var ranking repositories.BestSellerRanking
	if cfg.RedisAddr != "" {
		a.redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := a.redisClient.Ping(context.Background()).Err(); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		ranking = repositories.NewRedisBestSellerRanking(a.redisClient)
	}

	var orderMailer services.OrderMailer
	if cfg.SendGridAPIKey != "" {
		orderMailer = mailer.NewSendGridMailer(mailer.Config{
			APIKey:     cfg.SendGridAPIKey,
			SenderName: cfg.EmailFromName,
			SenderAddr: cfg.EmailSender,
		})
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	wishlistRepo := repositories.NewGORMWishlistRepository(db)
	contactRepo := repositories.NewGORMContactRepository(db)
	a.productRepo = productRepo

	// --- Services ---
	images := services.NewLocalImageStorage(cfg.UploadDir, cfg.PublicBaseURL+"/uploads")
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.AdminEmails)
	productService := services.NewProductService(productRepo, ranking, images)
	cartService := services.NewCartService(cartRepo, productRepo)
	orderService := services.NewOrderService(orderRepo, cartRepo, ranking, publisher)
	wishlistService := services.NewWishlistService(wishlistRepo, productRepo, cartService)
	contactService := services.NewContactService(contactRepo)
	a.notifications = services.NewNotificationService(orderRepo, userRepo, orderMailer)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	contactHandler := handlers.NewContactHandler(contactService)

	app := fiber.New(fiber.Config{BodyLimit: 10 * 1024 * 1024})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Static("/uploads", cfg.UploadDir)

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "healthy"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			status = "degraded"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   status,
			"time":     time.Now().Format(time.RFC3339),
			"rabbitmq": a.mqClient != nil,
			"redis":    a.redisClient != nil,
		})
	})

	auth := middleware.AuthRequired(authService)
	apiV1 := app.Group("/api/v1")
	admin := apiV1.Group("/admin", auth, middleware.AdminRequired())

	authHandler.RegisterRoutes(apiV1, auth)
	productHandler.RegisterRoutes(apiV1)
	contactHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1, auth)
	orderHandler.RegisterRoutes(apiV1, auth)
	wishlistHandler.RegisterRoutes(apiV1, auth)

	productHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)
	contactHandler.RegisterAdminRoutes(admin)

	a.Fiber = app
	return a, nil
}

// StartConsumer processes order events in the background when RabbitMQ is configured.
func (a *App) StartConsumer() error {
	if a.mqClient == nil {
		log.Println("RABBITMQ_URL not set. Order events are not consumed.")
		return nil
	}
	return a.mqClient.ConsumeOrderEvents(func(msg amqp.Delivery) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return a.notifications.HandleOrderEvent(ctx, msg.Body)
	})
}

// Close releases every connection opened by NewApp.
func (a *App) Close() {
	if a.mqClient != nil {
		if err := a.mqClient.Close(); err != nil {
			log.Printf("Error closing RabbitMQ client: %v", err)
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer app.Close()

	seedProducts(context.Background(), app.productRepo)

	if err := app.StartConsumer(); err != nil {
		log.Printf("Failed to start RabbitMQ consumer: %v", err)
	}

	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Fiber.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Fiber.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// seedProducts fills an empty catalog with a few watches.
func seedProducts(ctx context.Context, repo repositories.ProductRepository) {
	existing, err := repo.ListByPriceDesc(ctx, 1)
	if err != nil {
		log.Printf("Error checking catalog before seeding: %v", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	products := []models.Product{
		{Brand: "Rolex", Model: "Submariner Date", Price: 10250, Tag: "diver", Description: "Oystersteel, 41 mm, black Cerachrom bezel"},
		{Brand: "Omega", Model: "Speedmaster Moonwatch", Price: 7100, Tag: "chronograph", Description: "Hesalite crystal, manual-winding calibre 3861"},
		{Brand: "Patek Philippe", Model: "Calatrava", Price: 32900, Tag: "dress", Description: "White gold, 39 mm, hand-wound"},
		{Brand: "Tudor", Model: "Black Bay 58", Price: 4100, Tag: "diver", Description: "39 mm, domed crystal, gilt accents"},
	}

	for i := range products {
		if err := repo.Create(ctx, &products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].DisplayName(), err)
		} else {
			log.Printf("Seeded product: %s (ID: %s)", products[i].DisplayName(), products[i].ID)
		}
	}
}
