// Package template expands reusable activity lists into concrete schedules
// and manages user-saved templates on disk.
package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pictoplan/internal/arasaac"
	"pictoplan/internal/log"
	"pictoplan/internal/models"
)

// ToSchedule expands a template into a schedule dated today. Items whose
// pictogram image is already cached in imagesDir get it immediately; the
// rest are returned as resolver requests so the caller can fetch them in
// the background and apply the filenames as they arrive.
func ToSchedule(tpl models.Template, imagesDir string) (*models.Schedule, []arasaac.Request) {
	s := models.NewSchedule(tpl.Name)
	var pending []arasaac.Request

	for _, ti := range tpl.Items {
		item := models.NewScheduleItem()
		item.Label = ti.Label
		if ti.TimeStr != "" {
			item.TimeStr = ti.TimeStr
		}
		item.Duration = ti.Duration
		item.Category = models.NormalizeCategory(ti.Category)
		item.ImageFilename = ti.ImageFilename

		if ti.ArasaacID != 0 {
			filename := arasaac.CacheFilename(ti.ArasaacID)
			if _, err := os.Stat(filepath.Join(imagesDir, filename)); err == nil {
				item.ImageFilename = filename
			} else {
				pending = append(pending, arasaac.Request{ItemID: item.ID, PictogramID: ti.ArasaacID})
			}
		}

		s.AddItem(item)
	}

	return s, pending
}

// FromSchedule captures a schedule as a template. Completion flags and ids
// are not part of a template; only the display fields carry over.
func FromSchedule(s *models.Schedule, name string) models.Template {
	if name == "" {
		name = s.Name
	}
	tpl := models.Template{Name: name, Items: make([]models.TemplateItem, 0, len(s.Items))}
	for _, item := range s.Items {
		tpl.Items = append(tpl.Items, models.TemplateItem{
			Label:         item.Label,
			TimeStr:       item.TimeStr,
			Duration:      item.Duration,
			Category:      item.Category,
			ImageFilename: item.ImageFilename,
		})
	}
	return tpl
}

// Save writes a user template into dir and returns the file path.
func Save(dir string, tpl models.Template) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create template directory: %w", err)
	}

	data, err := json.MarshalIndent(tpl, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize template: %w", err)
	}

	safe := strings.ReplaceAll(tpl.Name, " ", "_")
	safe = strings.ReplaceAll(safe, "/", "_")
	path := filepath.Join(dir, safe+".json")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write template: %w", err)
	}
	return path, nil
}

// ListUser returns the user-saved templates in dir. Files that fail to
// parse are skipped, not fatal.
func ListUser(dir string) []models.Template {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var templates []models.Template
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Error("skipping unreadable template", err, "path", path)
			continue
		}
		var tpl models.Template
		if err := json.Unmarshal(data, &tpl); err != nil {
			log.Error("skipping corrupt template", err, "path", path)
			continue
		}
		templates = append(templates, tpl)
	}
	return templates
}

// Find looks a template up by name, built-ins first, then user templates
// in dir.
func Find(dir, name string) (models.Template, bool) {
	for _, tpl := range Builtin() {
		if strings.EqualFold(tpl.Name, name) {
			return tpl, true
		}
	}
	for _, tpl := range ListUser(dir) {
		if strings.EqualFold(tpl.Name, name) {
			return tpl, true
		}
	}
	return models.Template{}, false
}

// All returns built-in templates followed by user templates from dir.
func All(dir string) []models.Template {
	return append(Builtin(), ListUser(dir)...)
}
