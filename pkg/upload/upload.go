// Package upload stores image files posted with admin forms.
package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"farmintel/pkg/apperr"
)

const (
	Crops    = "crops"
	Products = "products"

	// stored paths start here; the router serves UploadDir under /static/uploads
	publicPrefix = "uploads"
)

var allowed = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true}

// Store writes uploads below root, one directory per kind.
type Store struct{ root string }

func NewStore(root string) *Store { return &Store{root: root} }

// Ensure creates the per-kind directories.
func (s *Store) Ensure() error {
	for _, sub := range []string{Crops, Products} {
		if err := os.MkdirAll(filepath.Join(s.root, sub), 0o755); err != nil {
			return fmt.Errorf("upload dir: %w", err)
		}
	}
	return nil
}

// Allowed reports whether name carries a whitelisted image extension.
func Allowed(name string) bool {
	return allowed[strings.ToLower(filepath.Ext(name))]
}

// Save copies fh under a random name and returns its relative public path,
// e.g. "uploads/products/<uuid>.png". A nil header saves nothing.
func (s *Store) Save(sub string, fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", nil
	}
	if !Allowed(fh.Filename) {
		return "", apperr.Validation("Only png, jpg, jpeg, gif and webp images are allowed.")
	}
	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(s.root, sub)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("upload dir: %w", err)
	}
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path.Join(publicPrefix, sub, name), nil
}

// SaveAll saves files in order, skipping empty parts.
func (s *Store) SaveAll(sub string, files []*multipart.FileHeader) ([]string, error) {
	out := make([]string, 0, len(files))
	for _, fh := range files {
		p, err := s.Save(sub, fh)
		if err != nil {
			return out, err
		}
		if p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

// Remove deletes a file previously returned by Save. Missing files are ignored.
func (s *Store) Remove(rel string) error {
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	if !strings.HasPrefix(rel, publicPrefix+"/") {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(rel, publicPrefix+"/"))))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// FormFile returns the named part of a multipart request, or nil when absent.
func FormFile(c echo.Context, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return fh
}

// FormFiles returns every part named field, or nil for non-multipart requests.
func FormFiles(c echo.Context, field string) []*multipart.FileHeader {
	if !strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		return nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			c.Logger().Warnf("multipart form: %v", err)
		}
		return nil
	}
	return form.File[field]
}
