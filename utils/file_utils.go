package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	// Base URL for serving files
	baseURL = "/uploads"

	// BucketBookings holds attachments from public booking submissions.
	BucketBookings = "bookings"
	// BucketGallery holds admin-uploaded gallery media.
	BucketGallery = "gallery"

	maxBookingImageSize = 5 * 1024 * 1024
	maxGalleryImageSize = 10 * 1024 * 1024
	maxGalleryVideoSize = 50 * 1024 * 1024
)

var (
	// Allowed image extensions
	allowedImageExts = map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".webp": true,
	}
	// Allowed video extensions (gallery only; duration is checked by the
	// admin client before upload, not re-verified here)
	allowedVideoExts = map[string]bool{
		".mp4":  true,
		".mov":  true,
		".avi":  true,
		".webm": true,
	}

	filenameCleaner = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
)

// ValidationError reports a rejected upload. It is raised before any file
// write, so a failed validation never leaves bytes on disk.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FileStore is filesystem-backed storage for uploaded media, organized by
// bucket under BaseDir.
type FileStore struct {
	BaseDir string
}

// NewFileStore returns a FileStore rooted at baseDir.
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{BaseDir: baseDir}
}

// Init creates the upload directories. Safe to call every time.
func (s *FileStore) Init() error {
	for _, bucket := range []string{BucketBookings, BucketGallery} {
		if err := os.MkdirAll(filepath.Join(s.BaseDir, bucket), 0755); err != nil {
			return fmt.Errorf("failed to create upload directory %s: %v", bucket, err)
		}
	}
	return nil
}

// cleanFilename removes path components and any potentially dangerous
// characters from the filename
func cleanFilename(filename string) string {
	filename = filepath.Base(filename)
	return filenameCleaner.ReplaceAllString(filename, "")
}

// Validate enforces the bucket's extension allow-list and size ceiling.
// Bookings accept images up to 5MB; the gallery accepts images up to 10MB
// and videos up to 50MB.
func (s *FileStore) Validate(bucket, filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))

	switch bucket {
	case BucketBookings:
		if !allowedImageExts[ext] {
			return &ValidationError{Message: "unsupported file type. Allowed formats: jpg, jpeg, png, webp"}
		}
		if size > maxBookingImageSize {
			return &ValidationError{Message: fmt.Sprintf("file too large. Maximum size is %d bytes", maxBookingImageSize)}
		}
	case BucketGallery:
		switch {
		case allowedImageExts[ext]:
			if size > maxGalleryImageSize {
				return &ValidationError{Message: fmt.Sprintf("file too large. Maximum size is %d bytes", maxGalleryImageSize)}
			}
		case allowedVideoExts[ext]:
			if size > maxGalleryVideoSize {
				return &ValidationError{Message: fmt.Sprintf("file too large. Maximum size is %d bytes", maxGalleryVideoSize)}
			}
		default:
			return &ValidationError{Message: "unsupported file type. Allowed formats: jpg, jpeg, png, webp, mp4, mov, avi, webm"}
		}
	default:
		return fmt.Errorf("unknown upload bucket: %s", bucket)
	}
	return nil
}

// Save validates the upload, writes it into the bucket and returns the
// relative URL the static server exposes. File names are derived from a
// millisecond timestamp: booking attachments keep only the original
// extension, gallery files append the cleaned original name.
func (s *FileStore) Save(bucket, filename string, size int64, src io.Reader) (string, error) {
	if err := s.Validate(bucket, filename, size); err != nil {
		return "", err
	}

	now := time.Now().UnixMilli()
	var generated string
	if bucket == BucketGallery {
		generated = fmt.Sprintf("%d-%s", now, cleanFilename(filename))
	} else {
		generated = fmt.Sprintf("%d%s", now, strings.ToLower(filepath.Ext(filename)))
	}

	dir := filepath.Join(s.BaseDir, bucket)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %v", dir, err)
	}

	fullPath := filepath.Join(dir, generated)
	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %v", fullPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file %s: %v", fullPath, err)
	}

	return fmt.Sprintf("%s/%s/%s", baseURL, bucket, generated), nil
}

// Remove deletes the stored file behind a URL previously returned by Save.
func (s *FileStore) Remove(urlPath string) error {
	rel := strings.TrimPrefix(urlPath, baseURL+"/")
	cleanPath := filepath.Clean(rel)
	if cleanPath == ".." || strings.HasPrefix(cleanPath, "../") {
		return fmt.Errorf("invalid file path: %s", urlPath)
	}
	return os.Remove(filepath.Join(s.BaseDir, cleanPath))
}
