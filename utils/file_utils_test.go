package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func listBucket(t *testing.T, store *FileStore, bucket string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(store.BaseDir, bucket))
	if os.IsNotExist(err) {
		return nil
	}
	assert.NoError(t, err)
	return entries
}

func TestValidateGalleryImageSizeBoundary(t *testing.T) {
	store := NewFileStore(t.TempDir())

	assert.NoError(t, store.Validate(BucketGallery, "site.jpg", 10*1024*1024))

	err := store.Validate(BucketGallery, "site.jpg", 10*1024*1024+1)
	assert.Error(t, err)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestValidateBookingImageSizeBoundary(t *testing.T) {
	store := NewFileStore(t.TempDir())

	assert.NoError(t, store.Validate(BucketBookings, "wall.png", 5*1024*1024))

	err := store.Validate(BucketBookings, "wall.png", 5*1024*1024+1)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestValidateVideoRules(t *testing.T) {
	store := NewFileStore(t.TempDir())

	// Videos are only accepted into the gallery bucket
	var vErr *ValidationError
	assert.ErrorAs(t, store.Validate(BucketBookings, "clip.mp4", 1024), &vErr)

	assert.NoError(t, store.Validate(BucketGallery, "clip.mp4", 50*1024*1024))
	assert.ErrorAs(t, store.Validate(BucketGallery, "clip.mp4", 50*1024*1024+1), &vErr)
}

func TestValidateRejectsDisallowedExtensions(t *testing.T) {
	store := NewFileStore(t.TempDir())

	var vErr *ValidationError
	for _, bucket := range []string{BucketBookings, BucketGallery} {
		assert.ErrorAs(t, store.Validate(bucket, "payload.exe", 1024), &vErr)
		assert.ErrorAs(t, store.Validate(bucket, "notes.txt", 1024), &vErr)
		assert.ErrorAs(t, store.Validate(bucket, "noextension", 1024), &vErr)
	}
}

func TestSaveGalleryKeepsOriginalName(t *testing.T) {
	store := NewFileStore(t.TempDir())
	content := []byte("fake image bytes")

	url, err := store.Save(BucketGallery, "living room.jpg", int64(len(content)), bytes.NewReader(content))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/gallery/"))
	// Spaces are stripped from the original name, the timestamp prefixes it
	assert.True(t, strings.HasSuffix(url, "-livingroom.jpg"))

	stored, err := os.ReadFile(filepath.Join(store.BaseDir, "gallery", filepath.Base(url)))
	assert.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestSaveBookingKeepsOnlyExtension(t *testing.T) {
	store := NewFileStore(t.TempDir())
	content := []byte("fake image bytes")

	url, err := store.Save(BucketBookings, "My Wall Photo.PNG", int64(len(content)), bytes.NewReader(content))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/bookings/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.NotContains(t, url, "Wall")
}

func TestSaveRejectionWritesNothing(t *testing.T) {
	store := NewFileStore(t.TempDir())
	assert.NoError(t, store.Init())

	_, err := store.Save(BucketGallery, "site.jpg", 10*1024*1024+1, bytes.NewReader([]byte("x")))
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Empty(t, listBucket(t, store, BucketGallery))

	_, err = store.Save(BucketBookings, "payload.exe", 10, bytes.NewReader([]byte("x")))
	assert.ErrorAs(t, err, &vErr)
	assert.Empty(t, listBucket(t, store, BucketBookings))
}

func TestRemoveDeletesStoredFile(t *testing.T) {
	store := NewFileStore(t.TempDir())
	content := []byte("bytes")

	url, err := store.Save(BucketGallery, "exterior.webp", int64(len(content)), bytes.NewReader(content))
	assert.NoError(t, err)

	assert.NoError(t, store.Remove(url))
	assert.Empty(t, listBucket(t, store, BucketGallery))
}

func TestRemoveRefusesTraversal(t *testing.T) {
	store := NewFileStore(t.TempDir())
	assert.Error(t, store.Remove("/uploads/../../etc/passwd"))
}

func TestInitIsIdempotent(t *testing.T) {
	store := NewFileStore(t.TempDir())
	assert.NoError(t, store.Init())
	assert.NoError(t, store.Init())

	for _, bucket := range []string{BucketBookings, BucketGallery} {
		info, err := os.Stat(filepath.Join(store.BaseDir, bucket))
		assert.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
