package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pictoplan/internal/log"
	"pictoplan/internal/models"
)

type libraryFile struct {
	Version int                  `json:"version"`
	Items   []models.LibraryItem `json:"items"`
}

type JSONStore struct {
	path  string
	items []models.LibraryItem
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("library already initialized at %s", s.path)
	}

	s.items = []models.LibraryItem{}
	return s.save()
}

// Load reads the library file. A missing or unreadable file yields an empty
// library rather than an error; losing the picture index must never keep the
// application from starting.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Error("failed to read library, starting empty", err, "path", s.path)
		}
		s.items = []models.LibraryItem{}
		return nil
	}

	var f libraryFile
	if err := json.Unmarshal(data, &f); err != nil {
		log.Error("failed to parse library, starting empty", err, "path", s.path)
		s.items = []models.LibraryItem{}
		return nil
	}

	if f.Items == nil {
		f.Items = []models.LibraryItem{}
	}
	s.items = f.Items
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(libraryFile{Version: 1, Items: s.items}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize library: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write library: %w", err)
	}

	return nil
}

func (s *JSONStore) Items() ([]models.LibraryItem, error) {
	if s.items == nil {
		return nil, fmt.Errorf("library not loaded")
	}

	out := make([]models.LibraryItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *JSONStore) GetItem(id string) (models.LibraryItem, error) {
	if s.items == nil {
		return models.LibraryItem{}, fmt.Errorf("library not loaded")
	}

	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.LibraryItem{}, fmt.Errorf("library item not found: %s", id)
}

func (s *JSONStore) ItemsByCategory(c models.Category) ([]models.LibraryItem, error) {
	if s.items == nil {
		return nil, fmt.Errorf("library not loaded")
	}

	var out []models.LibraryItem
	for _, item := range s.items {
		if item.Category == c {
			out = append(out, item)
		}
	}
	return out, nil
}

// AddItem stores a new library record. Items that reference a remote
// pictogram are deduplicated on that id so fetching the same pictogram
// twice returns the existing record instead of a copy.
func (s *JSONStore) AddItem(item models.LibraryItem) (models.LibraryItem, error) {
	if s.items == nil {
		return models.LibraryItem{}, fmt.Errorf("library not loaded")
	}

	if item.ArasaacID != 0 {
		for _, existing := range s.items {
			if existing.ArasaacID == item.ArasaacID {
				return existing, nil
			}
		}
	}

	s.items = append(s.items, item)
	if err := s.save(); err != nil {
		return models.LibraryItem{}, err
	}
	return item, nil
}

func (s *JSONStore) UpdateItem(item models.LibraryItem) error {
	if s.items == nil {
		return fmt.Errorf("library not loaded")
	}

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return s.save()
		}
	}
	return fmt.Errorf("library item not found: %s", item.ID)
}

// RemoveItem deletes the record with the given id. Removing an unknown id
// is a no-op.
func (s *JSONStore) RemoveItem(id string) error {
	if s.items == nil {
		return fmt.Errorf("library not loaded")
	}

	kept := s.items[:0]
	removed := false
	for _, item := range s.items {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	if !removed {
		return nil
	}
	return s.save()
}

func (s *JSONStore) GetPath() string {
	return s.path
}
