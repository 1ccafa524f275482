package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"pictoplan/internal/models"
	_ "modernc.org/sqlite"
)

const librarySchema = `
CREATE TABLE IF NOT EXISTS library_items (
	id TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	label TEXT NOT NULL,
	category TEXT NOT NULL,
	duration INTEGER NOT NULL DEFAULT 0,
	source TEXT NOT NULL DEFAULT '',
	arasaac_id INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_library_items_category ON library_items(category);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}

	return s.open()
}

// Load opens the database, creating it if missing. The schema is applied on
// every open; there is a single table and no migration history to track.
func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	return s.open()
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(librarySchema); err != nil {
		db.Close()
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

const itemColumns = "id, filename, label, category, duration, source, arasaac_id"

func scanItem(row interface{ Scan(dest ...any) error }) (models.LibraryItem, error) {
	var item models.LibraryItem
	var category string
	err := row.Scan(&item.ID, &item.Filename, &item.Label, &category, &item.Duration, &item.Source, &item.ArasaacID)
	if err != nil {
		return models.LibraryItem{}, err
	}
	item.Category = models.NormalizeCategory(models.Category(category))
	return item, nil
}

func (s *SQLiteStore) Items() ([]models.LibraryItem, error) {
	rows, err := s.db.Query("SELECT " + itemColumns + " FROM library_items ORDER BY label")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.LibraryItem{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *SQLiteStore) GetItem(id string) (models.LibraryItem, error) {
	row := s.db.QueryRow("SELECT "+itemColumns+" FROM library_items WHERE id = ?", id)
	item, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.LibraryItem{}, fmt.Errorf("library item not found: %s", id)
		}
		return models.LibraryItem{}, err
	}
	return item, nil
}

func (s *SQLiteStore) ItemsByCategory(c models.Category) ([]models.LibraryItem, error) {
	rows, err := s.db.Query("SELECT "+itemColumns+" FROM library_items WHERE category = ? ORDER BY label", string(c))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.LibraryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *SQLiteStore) AddItem(item models.LibraryItem) (models.LibraryItem, error) {
	if item.ArasaacID != 0 {
		row := s.db.QueryRow("SELECT "+itemColumns+" FROM library_items WHERE arasaac_id = ?", item.ArasaacID)
		existing, err := scanItem(row)
		if err == nil {
			return existing, nil
		}
		if err != sql.ErrNoRows {
			return models.LibraryItem{}, err
		}
	}

	_, err := s.db.Exec(
		"INSERT INTO library_items ("+itemColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		item.ID, item.Filename, item.Label, string(item.Category), item.Duration, item.Source, item.ArasaacID,
	)
	if err != nil {
		return models.LibraryItem{}, err
	}
	return item, nil
}

func (s *SQLiteStore) UpdateItem(item models.LibraryItem) error {
	res, err := s.db.Exec(
		"UPDATE library_items SET filename = ?, label = ?, category = ?, duration = ?, source = ?, arasaac_id = ? WHERE id = ?",
		item.Filename, item.Label, string(item.Category), item.Duration, item.Source, item.ArasaacID, item.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("library item not found: %s", item.ID)
	}
	return nil
}

// RemoveItem deletes the record with the given id. Removing an unknown id
// is a no-op.
func (s *SQLiteStore) RemoveItem(id string) error {
	_, err := s.db.Exec("DELETE FROM library_items WHERE id = ?", id)
	return err
}

func (s *SQLiteStore) GetPath() string {
	return s.path
}
