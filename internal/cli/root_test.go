package cli

import (
	"path/filepath"
	"testing"

	"pictoplan/internal/config"
	"pictoplan/internal/models"
	"pictoplan/internal/storage"
)

func setupSchedules(t *testing.T, names ...string) *Context {
	t.Helper()
	dir := t.TempDir()

	for _, name := range names {
		s := models.NewSchedule(name)
		if _, err := storage.SaveSchedule(dir, s); err != nil {
			t.Fatalf("SaveSchedule(%q) error = %v", name, err)
		}
	}

	return &Context{Dirs: config.Dirs{Schedules: dir}}
}

func TestResolveScheduleEmptyRefPicksNewest(t *testing.T) {
	ctx := setupSchedules(t, "Alpha", "Beta")

	path, err := resolveSchedule(ctx, "")
	if err != nil {
		t.Fatalf("resolveSchedule() error = %v", err)
	}
	// Same date, so reverse string order puts "Beta" first.
	if filepath.Base(path)[11:] != "Beta.json" {
		t.Errorf("expected newest schedule, got %s", path)
	}
}

func TestResolveScheduleByNameFragment(t *testing.T) {
	ctx := setupSchedules(t, "School Day", "Weekend")

	path, err := resolveSchedule(ctx, "school day")
	if err != nil {
		t.Fatalf("resolveSchedule() error = %v", err)
	}
	if filepath.Base(path)[11:] != "School_Day.json" {
		t.Errorf("fragment match failed, got %s", path)
	}
}

func TestResolveScheduleUnknownRefFails(t *testing.T) {
	ctx := setupSchedules(t, "School Day")
	if _, err := resolveSchedule(ctx, "holiday"); err == nil {
		t.Fatal("expected error for unmatched reference")
	}
}

func TestResolveScheduleNoneExist(t *testing.T) {
	ctx := &Context{Dirs: config.Dirs{Schedules: filepath.Join(t.TempDir(), "absent")}}
	if _, err := resolveSchedule(ctx, ""); err == nil {
		t.Fatal("expected error when no schedules exist")
	}
}

func TestMatchItemByPosition(t *testing.T) {
	s := models.NewSchedule("Day")
	for _, label := range []string{"Wake up", "Breakfast", "School"} {
		item := models.NewScheduleItem()
		item.Label = label
		s.AddItem(item)
	}

	got, err := matchItem(s, "2")
	if err != nil {
		t.Fatalf("matchItem() error = %v", err)
	}
	if got.Label != "Breakfast" {
		t.Errorf("matchItem(2) = %q, want Breakfast", got.Label)
	}

	if _, err := matchItem(s, "4"); err == nil {
		t.Error("expected out-of-range error")
	}
	if _, err := matchItem(s, "0"); err == nil {
		t.Error("expected out-of-range error for position 0")
	}
}

func TestMatchItemByLabelPrefix(t *testing.T) {
	s := models.NewSchedule("Day")
	for _, label := range []string{"Wake up", "Breakfast"} {
		item := models.NewScheduleItem()
		item.Label = label
		s.AddItem(item)
	}

	got, err := matchItem(s, "break")
	if err != nil {
		t.Fatalf("matchItem() error = %v", err)
	}
	if got.Label != "Breakfast" {
		t.Errorf("matchItem(break) = %q", got.Label)
	}

	if _, err := matchItem(s, "dinner"); err == nil {
		t.Error("expected error for unmatched label")
	}
}
