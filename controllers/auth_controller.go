package controllers

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/brightcoat/paintsite_backend/middleware"
	"github.com/brightcoat/paintsite_backend/models"
)

// AuthController handles admin authentication. There is exactly one admin
// identity system-wide, defined by static configuration.
type AuthController struct{}

// NewAuthController creates a new auth controller
func NewAuthController() *AuthController {
	return &AuthController{}
}

// Login validates the configured admin credentials and issues a signed
// 24-hour token. The failure response never reveals which field was wrong.
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   models.ErrTypeValidation,
			Message: "Invalid request",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   models.ErrTypeValidation,
			Message: "Email and password are required",
		})
	}

	emailMatch := subtle.ConstantTimeCompare([]byte(req.Email), []byte(os.Getenv("ADMIN_EMAIL")))
	passwordMatch := subtle.ConstantTimeCompare([]byte(req.Password), []byte(os.Getenv("ADMIN_PASSWORD")))
	if emailMatch&passwordMatch != 1 {
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   models.ErrTypeUnauthorized,
			Message: "Invalid admin credentials",
		})
	}

	token, err := middleware.GenerateAdminToken()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   models.ErrTypeStorage,
			Message: "Failed to issue token",
		})
	}

	return c.JSON(http.StatusOK, models.LoginResponse{Token: token})
}
