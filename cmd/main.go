package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/shaikhsiddique/EventPlaner/internal/config"
	"github.com/shaikhsiddique/EventPlaner/internal/db"
	"github.com/shaikhsiddique/EventPlaner/internal/handlers"
	"github.com/shaikhsiddique/EventPlaner/internal/httperr"
	"github.com/shaikhsiddique/EventPlaner/internal/middleware"
	"github.com/shaikhsiddique/EventPlaner/internal/models"
	"github.com/shaikhsiddique/EventPlaner/internal/storage"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	cfg := config.Load()

	// Initialize Fiber with the shared error handler
	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
	})

	// Initialize MinIO
	storage.InitMinio(cfg)

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowCredentials: true,
	}))

	// Connect to MongoDB and bootstrap indexes
	db.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	handlers.Init(cfg)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth Routes
	auth := app.Group("/api/auth")
	auth.Post("/student/signup", handlers.StudentSignup)
	auth.Post("/student/login", handlers.StudentLogin)
	auth.Post("/admin/signup", handlers.AdminSignup)
	auth.Post("/admin/login", handlers.AdminLogin)
	auth.Post("/logout", middleware.Auth, handlers.Logout)
	auth.Get("/me", middleware.Auth, handlers.Me)

	// Event Routes
	events := app.Group("/api/events", middleware.Auth)
	events.Get("/", handlers.ListEvents)
	events.Get("/:id", handlers.GetEvent)
	events.Post("/", middleware.RequireRole(models.RoleAdmin), handlers.CreateEvent)
	events.Put("/:id", middleware.RequireRole(models.RoleAdmin), handlers.UpdateEvent)
	events.Delete("/:id", middleware.RequireRole(models.RoleAdmin), handlers.DeleteEvent)

	// Registration Routes
	registrations := app.Group("/api/registrations")
	registrations.Post("/:eventId/register", middleware.Auth, middleware.RequireRole(models.RoleStudent), handlers.Register)
	registrations.Get("/:eventId/students", handlers.ListRegistrations)
	registrations.Put("/:eventId/students/:studentId", middleware.Auth, middleware.RequireRole(models.RoleAdmin), handlers.UpdateRegistration)
	registrations.Delete("/:eventId/students/:studentId", middleware.Auth, middleware.RequireRole(models.RoleAdmin), handlers.DeleteRegistration)

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
