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

// BookingStore is the persistence surface the booking handlers need.
type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	List(ctx context.Context) ([]models.Booking, error)
	Delete(ctx context.Context, id string) error
}

// BookingController handles booking submission and admin management.
type BookingController struct {
	store BookingStore
	files *utils.FileStore
}

// NewBookingController creates a new booking controller
func NewBookingController(store BookingStore, files *utils.FileStore) *BookingController {
	return &BookingController{store: store, files: files}
}

// CreateBooking handles the public booking form submission. The image
// attachment is optional; when present it is validated and stored before the
// record is persisted.
func (bc *BookingController) CreateBooking(c echo.Context) error {
	req := models.BookingRequest{
		FullName:    utils.SanitizeInput(c.FormValue("fullName")),
		Phone:       utils.SanitizeInput(c.FormValue("phone")),
		Location:    utils.SanitizeInput(c.FormValue("location")),
		ServiceType: utils.SanitizeInput(c.FormValue("serviceType")),
		Message:     utils.SanitizeInput(c.FormValue("message")),
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   models.ErrTypeValidation,
			Message: "fullName, phone, location and serviceType are required",
		})
	}

	var imagePath *string
	if fileHeader, err := c.FormFile("image"); err == nil {
		if err := bc.files.Validate(utils.BucketBookings, fileHeader.Filename, fileHeader.Size); err != nil {
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

		url, err := bc.files.Save(utils.BucketBookings, fileHeader.Filename, fileHeader.Size, src)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   models.ErrTypeStorage,
				Message: "Failed to store uploaded file",
			})
		}
		imagePath = &url
	}

	booking := &models.Booking{
		FullName:    req.FullName,
		Phone:       req.Phone,
		Location:    req.Location,
		ServiceType: req.ServiceType,
		Message:     req.Message,
		Image:       imagePath,
	}

	if err := bc.store.Create(c.Request().Context(), booking); err != nil {
		// The file and the record are written to different systems with no
		// shared transaction, so a failed record write leaves the stored file
		// orphaned. Best-effort compensation: remove it again.
		if imagePath != nil {
			if rmErr := bc.files.Remove(*imagePath); rmErr != nil {
				log.Printf("Failed to remove orphaned booking attachment %s: %v", *imagePath, rmErr)
			}
		}
		log.Printf("Booking create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.ErrTypeStorage,
			Message: "Booking failed.",
		})
	}

	return c.JSON(http.StatusCreated, models.MessageResponse{
		Message: "Booking submitted successfully.",
	})
}

// GetBookings returns all bookings for the admin panel, newest first.
func (bc *BookingController) GetBookings(c echo.Context) error {
	bookings, err := bc.store.List(c.Request().Context())
	if err != nil {
		log.Printf("Booking list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.ErrTypeStorage,
			Message: "Error fetching bookings.",
		})
	}
	return c.JSON(http.StatusOK, bookings)
}

// DeleteBooking removes a booking record. The attachment file, if any, is
// left on disk.
func (bc *BookingController) DeleteBooking(c echo.Context) error {
	err := bc.store.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == repositories.ErrNotFound {
			return c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   models.ErrTypeNotFound,
				Message: "Booking not found",
			})
		}
		log.Printf("Booking delete failed: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.ErrTypeStorage,
			Message: "Failed to delete booking.",
		})
	}
	return c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Booking deleted successfully",
	})
}
