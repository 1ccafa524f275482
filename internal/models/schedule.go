package models

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultScheduleName is the placeholder name for a freshly created schedule.
const DefaultScheduleName = "New Schedule"

var (
	// ErrItemNotFound reports that the reference item id is not part of
	// the schedule.
	ErrItemNotFound = errors.New("schedule item not found")
	// ErrNoPending reports that every item after the reference item is
	// already done.
	ErrNoPending = errors.New("no pending activities")
)

// ScheduleItem is a single activity in a schedule. It holds a copy of the
// originating library item's display data; later library edits do not
// propagate back into existing schedule items.
type ScheduleItem struct {
	ID            string   `json:"id"`
	LibraryID     string   `json:"library_id"`
	Label         string   `json:"label"`
	ImageFilename string   `json:"image_filename"`
	TimeStr       string   `json:"time_str"` // free-form "HH:MM", display only
	Duration      int      `json:"duration"` // minutes
	Done          bool     `json:"done"`
	Category      Category `json:"category"`
}

// NewScheduleItem returns an item with a fresh id and default fields.
func NewScheduleItem() ScheduleItem {
	return ScheduleItem{
		ID:       uuid.New().String(),
		TimeStr:  "08:00",
		Duration: 30,
		Category: CategoryOther,
	}
}

// FromLibraryItem creates a schedule item from a library record, copying
// its display data. A zero library duration falls back to 30 minutes.
func FromLibraryItem(li LibraryItem) ScheduleItem {
	item := NewScheduleItem()
	item.LibraryID = li.ID
	item.Label = li.Label
	item.ImageFilename = li.Filename
	item.Category = NormalizeCategory(li.Category)
	if li.Duration > 0 {
		item.Duration = li.Duration
	}
	return item
}

// UnmarshalJSON fills documented defaults for absent fields: a fresh id,
// time "08:00", duration 30 and category "other". An explicit zero
// duration is kept as-is.
func (i *ScheduleItem) UnmarshalJSON(data []byte) error {
	type alias ScheduleItem
	tmp := alias{
		TimeStr:  "08:00",
		Duration: 30,
		Category: CategoryOther,
	}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*i = ScheduleItem(tmp)
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	i.Category = NormalizeCategory(i.Category)
	return nil
}

// Schedule is one day's ordered activity list. Order is insertion order;
// the current activity is defined purely by position and the Done flag,
// never by wall-clock comparison against item times.
type Schedule struct {
	Name  string         `json:"name"`
	Date  string         `json:"date"` // ISO-8601 calendar date
	Items []ScheduleItem `json:"items"`
}

// NewSchedule creates an empty schedule dated today. An empty name falls
// back to the default placeholder.
func NewSchedule(name string) *Schedule {
	if name == "" {
		name = DefaultScheduleName
	}
	return &Schedule{
		Name:  name,
		Date:  time.Now().Format("2006-01-02"),
		Items: []ScheduleItem{},
	}
}

// AddItem appends to the end of the list; items are never reordered by time.
func (s *Schedule) AddItem(item ScheduleItem) {
	s.Items = append(s.Items, item)
}

// RemoveItem removes the item with the given id. No-op when absent.
func (s *Schedule) RemoveItem(id string) {
	kept := s.Items[:0]
	for _, item := range s.Items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.Items = kept
}

// Item returns a pointer to the item with the given id, or nil.
func (s *Schedule) Item(id string) *ScheduleItem {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// SetDone sets the completion flag on the item with the given id and
// reports whether the item exists. Setting an already-done item done again
// is a harmless no-op.
func (s *Schedule) SetDone(id string, done bool) bool {
	item := s.Item(id)
	if item == nil {
		return false
	}
	item.Done = done
	return true
}

// SetItemImage assigns an image filename to the item with the given id and
// reports whether the item exists. Used by the background image resolver.
func (s *Schedule) SetItemImage(id, filename string) bool {
	item := s.Item(id)
	if item == nil {
		return false
	}
	item.ImageFilename = filename
	return true
}

// CurrentActivity returns the first item, in list order, that is not done.
// It returns nil when the schedule is empty or every item is done.
func (s *Schedule) CurrentActivity() *ScheduleItem {
	for i := range s.Items {
		if !s.Items[i].Done {
			return &s.Items[i]
		}
	}
	return nil
}

// NextActivity returns the first pending item after the item with the
// given id. It returns ErrItemNotFound when the reference id is not in the
// schedule, and ErrNoPending when no later pending item exists, so callers
// can tell a bad id apart from an exhausted schedule.
func (s *Schedule) NextActivity(currentID string) (*ScheduleItem, error) {
	found := false
	for i := range s.Items {
		if found && !s.Items[i].Done {
			return &s.Items[i], nil
		}
		if s.Items[i].ID == currentID {
			found = true
		}
	}
	if !found {
		return nil, ErrItemNotFound
	}
	return nil, ErrNoPending
}

// Pending reports how many items are not yet done.
func (s *Schedule) Pending() int {
	n := 0
	for i := range s.Items {
		if !s.Items[i].Done {
			n++
		}
	}
	return n
}
