package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"pictoplan/internal/arasaac"
	"pictoplan/internal/config"
	"pictoplan/internal/models"
	"pictoplan/internal/storage"
)

type Context struct {
	Library  storage.Provider
	Dirs     config.Dirs
	Settings *config.Settings
	Client   *arasaac.Client
}

// resolveSchedule finds a schedule file by date, by name fragment, or the
// newest one when ref is empty.
func resolveSchedule(ctx *Context, ref string) (string, error) {
	paths, err := storage.ListSchedules(ctx.Dirs.Schedules)
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("no schedules found, create one with 'pictoplan schedule new'")
	}

	if ref == "" {
		return paths[0], nil
	}

	needle := strings.ToLower(strings.ReplaceAll(ref, " ", "_"))
	for _, p := range paths {
		if strings.Contains(strings.ToLower(filepath.Base(p)), needle) {
			return p, nil
		}
	}
	return "", fmt.Errorf("no schedule matching %q", ref)
}

// matchItem finds a schedule item by position (1-based) or label prefix.
func matchItem(s *models.Schedule, ref string) (*models.ScheduleItem, error) {
	var idx int
	if _, err := fmt.Sscanf(ref, "%d", &idx); err == nil {
		if idx < 1 || idx > len(s.Items) {
			return nil, fmt.Errorf("item %d out of range (1-%d)", idx, len(s.Items))
		}
		return &s.Items[idx-1], nil
	}

	needle := strings.ToLower(ref)
	for i := range s.Items {
		if strings.HasPrefix(strings.ToLower(s.Items[i].Label), needle) {
			return &s.Items[i], nil
		}
	}
	return nil, fmt.Errorf("no activity matching %q", ref)
}

func formatItem(i int, item models.ScheduleItem) string {
	check := " "
	if item.Done {
		check = "x"
	}
	line := fmt.Sprintf("%2d. [%s] %s  %-20s %3d min  %s", i+1, check, item.TimeStr, item.Label, item.Duration, item.Category)
	if item.ImageFilename == "" {
		line += "  (no image)"
	}
	return line
}
