package storage

import "pictoplan/internal/models"

// Provider is the persistence backend for the picture library. The JSON
// backend is the default; a SQLite backend is selected by file extension.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Items
	Items() ([]models.LibraryItem, error)
	GetItem(id string) (models.LibraryItem, error)
	ItemsByCategory(c models.Category) ([]models.LibraryItem, error)
	AddItem(item models.LibraryItem) (models.LibraryItem, error)
	UpdateItem(item models.LibraryItem) error
	RemoveItem(id string) error

	// Utils
	GetPath() string
}
