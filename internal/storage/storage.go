package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"pictoplan/internal/imaging"
	"pictoplan/internal/models"
)

// NewProvider selects a backend by file extension: ".db" and ".sqlite" get
// the SQLite store, everything else the JSON store.
func NewProvider(path string) Provider {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		return NewSQLiteStore(path)
	default:
		return NewJSONStore(path)
	}
}

// allowedExtensions are the image types accepted for import.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".svg":  true,
}

// AllowedExtension reports whether the file name carries an importable
// image extension.
func AllowedExtension(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// ImportImage copies an image into the application image directory and
// records it in the library. Raster images are normalized to PNG and
// bounded in size; SVG files are stored verbatim. The library is left
// unchanged when the source file is rejected or unreadable.
func ImportImage(p Provider, imagesDir, srcPath, label string, category models.Category, duration int) (models.LibraryItem, error) {
	if !AllowedExtension(srcPath) {
		return models.LibraryItem{}, fmt.Errorf("unsupported image type: %s", filepath.Ext(srcPath))
	}

	data, svg, err := imaging.NormalizeFile(srcPath)
	if err != nil {
		return models.LibraryItem{}, err
	}

	ext := ".png"
	if svg {
		ext = ".svg"
	}
	filename := uuid.New().String() + ext

	if err := os.MkdirAll(imagesDir, 0700); err != nil {
		return models.LibraryItem{}, fmt.Errorf("failed to create image directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(imagesDir, filename), data, 0600); err != nil {
		return models.LibraryItem{}, fmt.Errorf("failed to store image: %w", err)
	}

	if label == "" {
		base := filepath.Base(srcPath)
		label = strings.TrimSuffix(base, filepath.Ext(base))
	}

	item := models.LibraryItem{
		ID:       uuid.New().String(),
		Filename: filename,
		Label:    label,
		Category: models.NormalizeCategory(category),
		Duration: duration,
		Source:   "import",
	}
	return p.AddItem(item)
}

// RemoveImage deletes the library record and its stored image file. An
// unknown id is a no-op; a missing image file is ignored.
func RemoveImage(p Provider, imagesDir, id string) error {
	item, err := p.GetItem(id)
	if err != nil {
		return nil
	}

	if err := p.RemoveItem(id); err != nil {
		return err
	}

	if item.Filename != "" {
		if err := os.Remove(filepath.Join(imagesDir, item.Filename)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove image file: %w", err)
		}
	}
	return nil
}
