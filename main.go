package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/brightcoat/paintsite_backend/config"
	"github.com/brightcoat/paintsite_backend/controllers"
	"github.com/brightcoat/paintsite_backend/middleware"
	"github.com/brightcoat/paintsite_backend/repositories"
	"github.com/brightcoat/paintsite_backend/routes"
	"github.com/brightcoat/paintsite_backend/utils"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// The server must not come up without its admin identity and signing key
	for _, key := range []string{"JWT_SECRET", "ADMIN_EMAIL", "ADMIN_PASSWORD"} {
		if os.Getenv(key) == "" {
			log.Fatalf("%s environment variable is required", key)
		}
	}

	// Connect to database (fatal without MONGO_URI)
	client := config.ConnectDB()

	// Ensure upload buckets exist
	fileStore := utils.NewFileStore("uploads")
	if err := fileStore.Init(); err != nil {
		log.Fatal(err)
	}

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(middleware.GlobalCORS())

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "Paintsite Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// Initialize repositories
	bookingRepo := repositories.NewBookingRepository(client)
	galleryRepo := repositories.NewGalleryRepository(client)

	// Initialize controllers
	authController := controllers.NewAuthController()
	bookingController := controllers.NewBookingController(bookingRepo, fileStore)
	galleryController := controllers.NewGalleryController(galleryRepo, fileStore)

	// Register routes
	routes.SetupRoutes(e, bookingController, galleryController)
	routes.RegisterAdminRoutes(e, authController, bookingController, galleryController)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
