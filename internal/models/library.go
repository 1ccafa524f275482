package models

type Category string

const (
	CategoryMorning   Category = "morning"
	CategoryMeals     Category = "meals"
	CategorySchool    Category = "school"
	CategoryPlay      Category = "play"
	CategoryHygiene   Category = "hygiene"
	CategoryTransport Category = "transport"
	CategoryRest      Category = "rest"
	CategoryEvening   Category = "evening"
	CategoryOther     Category = "other"
)

// Categories returns the fixed category set in display order.
func Categories() []Category {
	return []Category{
		CategoryMorning,
		CategoryMeals,
		CategorySchool,
		CategoryPlay,
		CategoryHygiene,
		CategoryTransport,
		CategoryRest,
		CategoryEvening,
		CategoryOther,
	}
}

func (c Category) Display() string {
	switch c {
	case CategoryMorning:
		return "Morning Routine"
	case CategoryMeals:
		return "Meals"
	case CategorySchool:
		return "School"
	case CategoryPlay:
		return "Play"
	case CategoryHygiene:
		return "Hygiene"
	case CategoryTransport:
		return "Transport"
	case CategoryRest:
		return "Rest"
	case CategoryEvening:
		return "Evening Routine"
	default:
		return "Other"
	}
}

// NormalizeCategory maps unknown or empty category keys to CategoryOther.
func NormalizeCategory(c Category) Category {
	for _, known := range Categories() {
		if c == known {
			return c
		}
	}
	return CategoryOther
}

// LibraryItem is one persisted picture library record. Filename refers to
// an image under the managed images directory; a missing file is non-fatal
// for display purposes.
type LibraryItem struct {
	ID        string   `json:"id"`
	Filename  string   `json:"filename"`
	Label     string   `json:"label"`
	Category  Category `json:"category"`
	Duration  int      `json:"duration"` // minutes, 0 = unspecified
	Source    string   `json:"source,omitempty"`
	ArasaacID int      `json:"arasaac_id,omitempty"`
}
