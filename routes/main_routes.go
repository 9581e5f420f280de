package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/brightcoat/paintsite_backend/controllers"
)

// SetupRoutes registers the public API surface: booking submission, the
// gallery listing and static file serving.
func SetupRoutes(e *echo.Echo, bookingController *controllers.BookingController, galleryController *controllers.GalleryController) {
	api := e.Group("/api")

	// Public: booking form submission (optional image attachment)
	api.POST("/booking", bookingController.CreateBooking)

	// Public: gallery listing, newest first
	api.GET("/gallery", galleryController.GetGallery)

	RegisterFileRoutes(e)
}
