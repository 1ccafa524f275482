package export

import (
	"encoding/json"
	"strings"
	"testing"

	"pictoplan/internal/models"
)

func sample() *models.Schedule {
	s := models.NewSchedule("Test Day")
	s.Date = "2026-08-23"

	a := models.NewScheduleItem()
	a.Label = "Breakfast"
	a.TimeStr = "07:00"
	a.Duration = 20
	a.Category = models.CategoryMeals
	a.Done = true
	s.AddItem(a)

	b := models.NewScheduleItem()
	b.Label = "Play, outside"
	b.TimeStr = "08:00"
	b.Duration = 60
	b.Category = models.CategoryPlay
	s.AddItem(b)

	return s
}

func TestToCSV(t *testing.T) {
	got, err := ToCSV(sample())
	if err != nil {
		t.Fatalf("ToCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), got)
	}
	if lines[0] != "Time,Activity,Duration (min),Category,Done" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "07:00,Breakfast,20,meals,Yes" {
		t.Errorf("row 1 = %q", lines[1])
	}
	// A comma in the label must be quoted.
	if lines[2] != `08:00,"Play, outside",60,play,No` {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestToJSONRoundTrips(t *testing.T) {
	s := sample()
	out, err := ToJSON(s)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var back models.Schedule
	if err := json.Unmarshal([]byte(out), &back); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if back.Name != s.Name || back.Date != s.Date || len(back.Items) != 2 {
		t.Errorf("round trip mismatch: %+v", back)
	}
	if !back.Items[0].Done || back.Items[1].Done {
		t.Error("done flags lost in export")
	}
}

func TestDefaultFilename(t *testing.T) {
	s := sample()
	s.Name = "School Day / v2"
	if got := DefaultFilename(s, "csv"); got != "2026-08-23_School_Day___v2.csv" {
		t.Errorf("DefaultFilename() = %q", got)
	}
}
