package models

import (
	"encoding/json"
	"errors"
	"testing"
)

func item(label string, done bool) ScheduleItem {
	i := NewScheduleItem()
	i.Label = label
	i.Done = done
	return i
}

func TestNewScheduleDefaults(t *testing.T) {
	s := NewSchedule("")
	if s.Name != DefaultScheduleName {
		t.Errorf("Name = %q, want default", s.Name)
	}
	if s.Date == "" {
		t.Error("Date not set")
	}
	if len(s.Items) != 0 {
		t.Errorf("expected empty schedule, got %d items", len(s.Items))
	}
}

func TestCurrentActivityFirstPending(t *testing.T) {
	s := NewSchedule("Day")
	s.AddItem(item("a", true))
	s.AddItem(item("b", false))
	s.AddItem(item("c", false))

	if got := s.CurrentActivity(); got == nil || got.Label != "b" {
		t.Errorf("CurrentActivity() = %v, want b", got)
	}
}

func TestCurrentActivityAllDone(t *testing.T) {
	s := NewSchedule("Day")
	s.AddItem(item("a", true))
	if s.CurrentActivity() != nil {
		t.Error("expected nil when all items done")
	}

	empty := NewSchedule("Empty")
	if empty.CurrentActivity() != nil {
		t.Error("expected nil for empty schedule")
	}
}

func TestNextActivitySkipsDone(t *testing.T) {
	s := NewSchedule("Day")
	a, b, c := item("a", false), item("b", true), item("c", false)
	s.AddItem(a)
	s.AddItem(b)
	s.AddItem(c)

	next, err := s.NextActivity(a.ID)
	if err != nil {
		t.Fatalf("NextActivity() error = %v", err)
	}
	if next.Label != "c" {
		t.Errorf("NextActivity() = %q, want c", next.Label)
	}
}

func TestNextActivityDistinguishesErrors(t *testing.T) {
	s := NewSchedule("Day")
	a := item("a", false)
	b := item("b", true)
	s.AddItem(a)
	s.AddItem(b)

	if _, err := s.NextActivity("unknown"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("unknown id: err = %v, want ErrItemNotFound", err)
	}
	if _, err := s.NextActivity(a.ID); !errors.Is(err, ErrNoPending) {
		t.Errorf("exhausted tail: err = %v, want ErrNoPending", err)
	}
	// Pending items before the reference id do not count.
	if _, err := s.NextActivity(b.ID); !errors.Is(err, ErrNoPending) {
		t.Errorf("last item: err = %v, want ErrNoPending", err)
	}
}

func TestRemoveItemKeepsOrder(t *testing.T) {
	s := NewSchedule("Day")
	a, b, c := item("a", false), item("b", false), item("c", false)
	s.AddItem(a)
	s.AddItem(b)
	s.AddItem(c)

	s.RemoveItem(b.ID)
	if len(s.Items) != 2 || s.Items[0].Label != "a" || s.Items[1].Label != "c" {
		t.Errorf("after remove: %+v", s.Items)
	}

	s.RemoveItem("unknown")
	if len(s.Items) != 2 {
		t.Error("removing unknown id changed the schedule")
	}
}

func TestSetDoneIdempotent(t *testing.T) {
	s := NewSchedule("Day")
	a := item("a", false)
	s.AddItem(a)

	if !s.SetDone(a.ID, true) {
		t.Fatal("SetDone() reported missing item")
	}
	if !s.SetDone(a.ID, true) {
		t.Fatal("repeat SetDone() reported missing item")
	}
	if !s.Items[0].Done {
		t.Error("item not done")
	}
	if s.SetDone("unknown", true) {
		t.Error("SetDone() on unknown id reported success")
	}
}

func TestSetItemImage(t *testing.T) {
	s := NewSchedule("Day")
	a := item("a", false)
	s.AddItem(a)

	if !s.SetItemImage(a.ID, "arasaac_8988.png") {
		t.Fatal("SetItemImage() reported missing item")
	}
	if s.Items[0].ImageFilename != "arasaac_8988.png" {
		t.Errorf("ImageFilename = %q", s.Items[0].ImageFilename)
	}
	if s.SetItemImage("unknown", "x.png") {
		t.Error("SetItemImage() on unknown id reported success")
	}
}

func TestPendingCount(t *testing.T) {
	s := NewSchedule("Day")
	s.AddItem(item("a", true))
	s.AddItem(item("b", false))
	s.AddItem(item("c", false))
	if got := s.Pending(); got != 2 {
		t.Errorf("Pending() = %d, want 2", got)
	}
}

func TestFromLibraryItem(t *testing.T) {
	li := LibraryItem{
		ID:       "lib-1",
		Filename: "pic.png",
		Label:    "Breakfast",
		Category: CategoryMeals,
		Duration: 20,
	}
	si := FromLibraryItem(li)
	if si.LibraryID != "lib-1" || si.Label != "Breakfast" || si.ImageFilename != "pic.png" {
		t.Errorf("copy mismatch: %+v", si)
	}
	if si.Duration != 20 {
		t.Errorf("Duration = %d", si.Duration)
	}
	if si.ID == "" || si.ID == li.ID {
		t.Errorf("schedule item id not fresh: %q", si.ID)
	}

	li.Duration = 0
	if got := FromLibraryItem(li).Duration; got != 30 {
		t.Errorf("zero library duration: got %d, want 30", got)
	}
}

func TestUnmarshalFillsDefaults(t *testing.T) {
	var si ScheduleItem
	if err := json.Unmarshal([]byte(`{"label":"Play"}`), &si); err != nil {
		t.Fatal(err)
	}
	if si.ID == "" {
		t.Error("missing id not generated")
	}
	if si.TimeStr != "08:00" || si.Duration != 30 || si.Category != CategoryOther {
		t.Errorf("defaults not applied: %+v", si)
	}

	var explicit ScheduleItem
	if err := json.Unmarshal([]byte(`{"label":"Pause","duration":0,"category":"weird"}`), &explicit); err != nil {
		t.Fatal(err)
	}
	if explicit.Duration != 0 {
		t.Errorf("explicit zero duration overwritten: %d", explicit.Duration)
	}
	if explicit.Category != CategoryOther {
		t.Errorf("unknown category not normalized: %q", explicit.Category)
	}
}

func TestNormalizeCategory(t *testing.T) {
	if got := NormalizeCategory("meals"); got != CategoryMeals {
		t.Errorf("NormalizeCategory(meals) = %q", got)
	}
	if got := NormalizeCategory("bogus"); got != CategoryOther {
		t.Errorf("NormalizeCategory(bogus) = %q", got)
	}
	if got := NormalizeCategory(""); got != CategoryOther {
		t.Errorf("NormalizeCategory(empty) = %q", got)
	}
}
