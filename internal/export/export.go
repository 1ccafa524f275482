// Package export renders schedules as CSV and JSON for sharing outside
// the application.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"pictoplan/internal/models"
)

// ToCSV renders the schedule as CSV, one row per item in schedule order.
func ToCSV(s *models.Schedule) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Time", "Activity", "Duration (min)", "Category", "Done"}); err != nil {
		return "", fmt.Errorf("writing csv header: %w", err)
	}
	for _, item := range s.Items {
		done := "No"
		if item.Done {
			done = "Yes"
		}
		row := []string{item.TimeStr, item.Label, strconv.Itoa(item.Duration), string(item.Category), done}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing csv: %w", err)
	}
	return buf.String(), nil
}

// ToJSON renders the schedule as indented JSON, the same shape the
// schedule files use.
func ToJSON(s *models.Schedule) (string, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing schedule: %w", err)
	}
	return string(data), nil
}

// DefaultFilename suggests an export file name from the schedule's date
// and name.
func DefaultFilename(s *models.Schedule, ext string) string {
	safe := strings.ReplaceAll(s.Name, " ", "_")
	safe = strings.ReplaceAll(safe, "/", "_")
	return fmt.Sprintf("%s_%s.%s", s.Date, safe, ext)
}
