package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/brightcoat/paintsite_backend/models"
)

// RegisterFileRoutes exposes the upload root over HTTP. Stored files are
// publicly fetchable by path; gallery media is public by design and booking
// attachments share the same trust boundary.
func RegisterFileRoutes(e *echo.Echo) {
	e.GET("/uploads/*", ServeFile)
}

// ServeFile handles serving uploaded files with proper security checks
func ServeFile(c echo.Context) error {
	path := c.Param("*")
	if path == "" {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   models.ErrTypeNotFound,
			Message: "File not found",
		})
	}

	// Clean the path to prevent directory traversal
	cleanPath := filepath.Clean(path)
	if cleanPath == ".." || strings.HasPrefix(cleanPath, "../") {
		return c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error:   models.ErrTypeForbidden,
			Message: "Access denied - invalid path",
		})
	}

	fullPath := filepath.Join("uploads", cleanPath)

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   models.ErrTypeNotFound,
				Message: "File not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.ErrTypeStorage,
			Message: "Error accessing file",
		})
	}

	// Don't allow directory listing
	if info.IsDir() {
		return c.JSON(http.StatusForbidden, models.ErrorResponse{
			Error:   models.ErrTypeForbidden,
			Message: "Access denied - directory listing not allowed",
		})
	}

	// Set cache headers
	c.Response().Header().Set("Cache-Control", "public, max-age=31536000") // Cache for 1 year
	c.Response().Header().Set("Expires", time.Now().AddDate(1, 0, 0).Format(time.RFC1123))

	return c.File(fullPath)
}
