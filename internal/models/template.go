package models

// TemplateItem is one activity descriptor inside a template. ArasaacID,
// when set, references a remote pictogram that may need downloading before
// the expanded schedule item has an image.
type TemplateItem struct {
	Label         string   `json:"label"`
	TimeStr       string   `json:"time_str"`
	Duration      int      `json:"duration"`
	Category      Category `json:"category"`
	ArasaacID     int      `json:"arasaac_id,omitempty"`
	ImageFilename string   `json:"image_filename,omitempty"`
}

// Template is a named, reusable activity list that expands into a
// concrete day's schedule.
type Template struct {
	Name    string         `json:"name"`
	Items   []TemplateItem `json:"items"`
	BuiltIn bool           `json:"-"`
}
