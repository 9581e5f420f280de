package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/brightcoat/paintsite_backend/middleware"
	"github.com/brightcoat/paintsite_backend/models"
)

func loginRequest(t *testing.T, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	ac := NewAuthController()
	return rec, ac.Login(c)
}

func setAdminEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ADMIN_EMAIL", "admin@paintsite.test")
	t.Setenv("ADMIN_PASSWORD", "let-me-in")
	t.Setenv("JWT_SECRET", "test-signing-secret")
}

func TestLoginSuccess(t *testing.T) {
	setAdminEnv(t)

	rec, err := loginRequest(t, `{"email":"admin@paintsite.test","password":"let-me-in"}`)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)

	claims, err := middleware.ParseAdminToken(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	setAdminEnv(t)

	rec, err := loginRequest(t, `{"email":"admin@paintsite.test","password":"wrong"}`)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginDoesNotRevealWhichFieldWasWrong(t *testing.T) {
	setAdminEnv(t)

	wrongEmail, err := loginRequest(t, `{"email":"intruder@paintsite.test","password":"let-me-in"}`)
	assert.NoError(t, err)
	wrongPassword, err := loginRequest(t, `{"email":"admin@paintsite.test","password":"wrong"}`)
	assert.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, wrongEmail.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, wrongEmail.Body.String(), wrongPassword.Body.String())

	var resp models.ErrorResponse
	assert.NoError(t, json.Unmarshal(wrongEmail.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid admin credentials", resp.Message)
}

func TestLoginMissingFields(t *testing.T) {
	setAdminEnv(t)

	rec, err := loginRequest(t, `{"email":"","password":""}`)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
