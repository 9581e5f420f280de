// middleware/jwt_middleware.go
package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"github.com/brightcoat/paintsite_backend/models"
)

// AdminClaims for the admin JWT token. The token carries a single capability
// claim; there is no per-user identity behind it.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

// tokenLifetime is the fixed validity window of an admin token. Validity is
// determined purely by signature and expiry; there is no revocation list.
const tokenLifetime = 24 * time.Hour

// GetJWTSecret returns the JWT secret from environment variables
func GetJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		panic("JWT_SECRET environment variable is required")
	}
	return secret
}

// GenerateAdminToken issues a signed token asserting the admin capability,
// valid for 24 hours.
func GenerateAdminToken() (string, error) {
	claims := &AdminClaims{
		Role: "admin",
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(tokenLifetime).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(GetJWTSecret()))
}

// ParseAdminToken verifies signature, expiry and the admin role claim.
func ParseAdminToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(GetJWTSecret()), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.Role != "admin" {
		return nil, errors.New("insufficient role")
	}
	return claims, nil
}

// RequireAdmin gates admin-only routes behind a bearer admin token. A
// missing Authorization header is reported as 403; a token that fails
// signature, expiry or role checks as 401. On success the request proceeds
// unchanged.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return c.JSON(http.StatusForbidden, models.ErrorResponse{
					Error:   models.ErrTypeForbidden,
					Message: "No token provided",
				})
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   models.ErrTypeUnauthorized,
					Message: "Unauthorized",
				})
			}
			if _, err := ParseAdminToken(tokenString); err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   models.ErrTypeUnauthorized,
					Message: "Unauthorized",
				})
			}

			return next(c)
		}
	}
}
