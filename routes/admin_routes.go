package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/brightcoat/paintsite_backend/controllers"
	"github.com/brightcoat/paintsite_backend/middleware"
)

// RegisterAdminRoutes sets up all admin-related routes
func RegisterAdminRoutes(e *echo.Echo, authController *controllers.AuthController, bookingController *controllers.BookingController, galleryController *controllers.GalleryController) {
	// Admin routes group
	admin := e.Group("/api/admin")

	// Public routes (no auth required)
	admin.POST("/login", authController.Login)

	// Protected routes (require admin token)
	protected := admin.Group("")
	protected.Use(middleware.RequireAdmin())

	protected.GET("/bookings", bookingController.GetBookings)
	protected.DELETE("/bookings/:id", bookingController.DeleteBooking)

	protected.POST("/gallery", galleryController.UploadGalleryItem)
	protected.DELETE("/gallery/:id", galleryController.DeleteGalleryItem)
}
