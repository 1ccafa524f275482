package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pictoplan/internal/models"
)

func TestScheduleFilenameSanitizesName(t *testing.T) {
	s := &models.Schedule{Name: "School Day / Fall", Date: "2026-08-23"}
	got := ScheduleFilename(s)
	want := "2026-08-23_School_Day___Fall.json"
	if got != want {
		t.Errorf("ScheduleFilename() = %q, want %q", got, want)
	}
}

func TestScheduleSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := models.NewSchedule("Test Day")
	item := models.NewScheduleItem()
	item.Label = "Breakfast"
	item.Duration = 15
	s.AddItem(item)

	path, err := SaveSchedule(dir, s)
	if err != nil {
		t.Fatalf("SaveSchedule() error = %v", err)
	}

	loaded, err := LoadSchedule(path)
	if err != nil {
		t.Fatalf("LoadSchedule() error = %v", err)
	}
	if loaded.Name != "Test Day" || len(loaded.Items) != 1 {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
	if loaded.Items[0].Label != "Breakfast" || loaded.Items[0].Duration != 15 {
		t.Errorf("item mismatch: %+v", loaded.Items[0])
	}
}

func TestScheduleSaveLoadEmpty(t *testing.T) {
	dir := t.TempDir()

	s := models.NewSchedule("")
	path, err := SaveSchedule(dir, s)
	if err != nil {
		t.Fatalf("SaveSchedule() error = %v", err)
	}

	loaded, err := LoadSchedule(path)
	if err != nil {
		t.Fatalf("LoadSchedule() error = %v", err)
	}
	if loaded.Name != models.DefaultScheduleName {
		t.Errorf("Name = %q, want default", loaded.Name)
	}
	if loaded.Items == nil || len(loaded.Items) != 0 {
		t.Errorf("expected empty item slice, got %v", loaded.Items)
	}
}

func TestLoadScheduleFillsItemDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sparse.json")
	raw := `{"name":"Sparse","date":"2026-08-23","items":[{"label":"Play"},{"label":"Pause","duration":0}]}`
	if err := os.WriteFile(path, []byte(raw), 0600); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadSchedule(path)
	if err != nil {
		t.Fatalf("LoadSchedule() error = %v", err)
	}

	first := loaded.Items[0]
	if first.ID == "" {
		t.Error("expected generated id for item without one")
	}
	if first.TimeStr != "08:00" || first.Duration != 30 || first.Category != models.CategoryOther {
		t.Errorf("defaults not applied: %+v", first)
	}

	// An explicit zero duration is a deliberate value, not an omission.
	if loaded.Items[1].Duration != 0 {
		t.Errorf("explicit zero duration overwritten: %d", loaded.Items[1].Duration)
	}
}

func TestLoadScheduleCorruptFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{oops"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSchedule(path); err == nil {
		t.Fatal("expected error for corrupt schedule file")
	}
}

func TestListSchedulesNewestFirst(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"2026-08-21_a.json", "2026-08-23_b.json", "2026-08-22_c.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	paths, err := ListSchedules(dir)
	if err != nil {
		t.Fatalf("ListSchedules() error = %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 schedules, got %d", len(paths))
	}
	if !strings.HasSuffix(paths[0], "2026-08-23_b.json") {
		t.Errorf("expected newest first, got %s", paths[0])
	}
}

func TestListSchedulesMissingDir(t *testing.T) {
	paths, err := ListSchedules(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("ListSchedules() on missing dir should not error, got %v", err)
	}
	if paths != nil {
		t.Errorf("expected nil, got %v", paths)
	}
}
