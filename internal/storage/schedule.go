package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pictoplan/internal/models"
)

// sanitizeName makes a schedule name safe for use in a file name.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "/", "_")
	return name
}

// ScheduleFilename derives the on-disk name for a schedule from its date
// and display name.
func ScheduleFilename(s *models.Schedule) string {
	return fmt.Sprintf("%s_%s.json", s.Date, sanitizeName(s.Name))
}

// SaveSchedule writes a schedule to dir and returns the file path.
func SaveSchedule(dir string, s *models.Schedule) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create schedule directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize schedule: %w", err)
	}

	path := filepath.Join(dir, ScheduleFilename(s))
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write schedule: %w", err)
	}
	return path, nil
}

// LoadSchedule reads a schedule file. Unlike the library, a schedule that
// cannot be read or parsed is an error the caller must see.
func LoadSchedule(path string) (*models.Schedule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schedule: %w", err)
	}

	var s models.Schedule
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schedule %s: %w", path, err)
	}
	if s.Items == nil {
		s.Items = []models.ScheduleItem{}
	}
	return &s, nil
}

// ListSchedules returns the schedule file paths in dir, newest date first.
func ListSchedules(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
	return paths, nil
}
