package controllers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/brightcoat/paintsite_backend/models"
)

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

type filePart struct {
	field    string
	filename string
	content  []byte
}

// newMultipartRequest builds a multipart form request with the given fields
// and an optional single file part.
func newMultipartRequest(t *testing.T, target string, fields map[string]string, file *filePart) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		assert.NoError(t, writer.WriteField(key, value))
	}
	if file != nil {
		part, err := writer.CreateFormFile(file.field, file.filename)
		assert.NoError(t, err)
		_, err = part.Write(file.content)
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

// --- Mock BookingStore ---

type mockBookingStore struct {
	createFn func(ctx context.Context, booking *models.Booking) error
	listFn   func(ctx context.Context) ([]models.Booking, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	return m.createFn(ctx, booking)
}
func (m *mockBookingStore) List(ctx context.Context) ([]models.Booking, error) {
	return m.listFn(ctx)
}
func (m *mockBookingStore) Delete(ctx context.Context, id string) error {
	return m.deleteFn(ctx, id)
}

// --- Mock GalleryStore ---

type mockGalleryStore struct {
	createFn func(ctx context.Context, item *models.GalleryItem) error
	listFn   func(ctx context.Context) ([]models.GalleryItem, error)
	deleteFn func(ctx context.Context, id string) (*models.GalleryItem, error)
}

func (m *mockGalleryStore) Create(ctx context.Context, item *models.GalleryItem) error {
	return m.createFn(ctx, item)
}
func (m *mockGalleryStore) List(ctx context.Context) ([]models.GalleryItem, error) {
	return m.listFn(ctx)
}
func (m *mockGalleryStore) Delete(ctx context.Context, id string) (*models.GalleryItem, error) {
	return m.deleteFn(ctx, id)
}
