package controllers

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/brightcoat/paintsite_backend/models"
	"github.com/brightcoat/paintsite_backend/repositories"
	"github.com/brightcoat/paintsite_backend/utils"
)

// defaultGalleryTitle is the fallback when no title is supplied. It is the
// fixed string "interior" independent of the selected category; the admin
// client relies on this exact value.
const defaultGalleryTitle = "interior"

// GalleryStore is the persistence surface the gallery handlers need.
type GalleryStore interface {
	Create(ctx context.Context, item *models.GalleryItem) error
	List(ctx context.Context) ([]models.GalleryItem, error)
	Delete(ctx context.Context, id string) (*models.GalleryItem, error)
}

// GalleryController handles the public gallery listing and admin uploads.
type GalleryController struct {
	store GalleryStore
	files *utils.FileStore
}

// NewGalleryController creates a new gallery controller
func NewGalleryController(store GalleryStore, files *utils.FileStore) *GalleryController {
	return &GalleryController{store: store, files: files}
}

// GetGallery returns all gallery items, newest first. Public.
func (gc *GalleryController) GetGallery(c echo.Context) error {
	items, err := gc.store.List(c.Request().Context())
	if err != nil {
		log.Printf("Gallery list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.ErrTypeStorage,
			Message: "Failed to fetch gallery.",
		})
	}
	return c.JSON(http.StatusOK, items)
}

// UploadGalleryItem handles an admin media upload. The file is mandatory and
// validated before any write; the record is persisted only after the file
// landed on disk.
func (gc *GalleryController) UploadGalleryItem(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   models.ErrTypeValidation,
			Message: "image file is required",
		})
	}

	title := utils.SanitizeInput(c.FormValue("title"))
	category := utils.SanitizeInput(c.FormValue("category"))
	if category == "" {
		category = models.CategoryInterior
	}
	if !models.IsValidCategory(category) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   models.ErrTypeValidation,
			Message: "category must be one of: interior, exterior, commercial",
		})
	}
	if title == "" {
		title = defaultGalleryTitle
	}

	if err := gc.files.Validate(utils.BucketGallery, fileHeader.Filename, fileHeader.Size); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   models.ErrTypeValidation,
			Message: err.Error(),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.ErrTypeStorage,
			Message: "Failed to read uploaded file",
		})
	}
	defer src.Close()

	url, err := gc.files.Save(utils.BucketGallery, fileHeader.Filename, fileHeader.Size, src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.ErrTypeStorage,
			Message: "Upload failed",
		})
	}

	item := &models.GalleryItem{
		Title:    title,
		Category: category,
		Image:    url,
	}

	if err := gc.store.Create(c.Request().Context(), item); err != nil {
		if rmErr := gc.files.Remove(url); rmErr != nil {
			log.Printf("Failed to remove orphaned gallery file %s: %v", url, rmErr)
		}
		log.Printf("Gallery create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.ErrTypeStorage,
			Message: "Upload failed",
		})
	}

	return c.JSON(http.StatusCreated, item)
}

// DeleteGalleryItem removes a gallery record and then its backing file. The
// record delete is authoritative: an unlink failure is logged but the
// operation still reports success.
func (gc *GalleryController) DeleteGalleryItem(c echo.Context) error {
	item, err := gc.store.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   models.ErrTypeNotFound,
				Message: "Image not found",
			})
		}
		log.Printf("Gallery delete failed: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.ErrTypeStorage,
			Message: "Failed to delete image.",
		})
	}

	if err := gc.files.Remove(item.Image); err != nil {
		log.Printf("Failed to remove gallery file %s: %v", item.Image, err)
	}

	return c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Deleted successfully",
	})
}
