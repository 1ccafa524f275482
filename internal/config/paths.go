package config

import (
	"os"
	"path/filepath"
)

const appDirName = "pictoplan"

// Dirs holds the per-user directories the application writes to.
type Dirs struct {
	Config    string // settings, library.json
	Data      string // images
	Images    string
	Schedules string
	Templates string
}

// DefaultDirs resolves the XDG base directories and ensures each
// application directory exists.
func DefaultDirs() (Dirs, error) {
	cfg := os.Getenv("XDG_CONFIG_HOME")
	if cfg == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Dirs{}, err
		}
		cfg = filepath.Join(home, ".config")
	}
	data := os.Getenv("XDG_DATA_HOME")
	if data == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Dirs{}, err
		}
		data = filepath.Join(home, ".local", "share")
	}

	d := Dirs{
		Config: filepath.Join(cfg, appDirName),
		Data:   filepath.Join(data, appDirName),
	}
	d.Images = filepath.Join(d.Data, "images")
	d.Schedules = filepath.Join(d.Config, "schedules")
	d.Templates = filepath.Join(d.Config, "templates")

	for _, p := range []string{d.Config, d.Images, d.Schedules, d.Templates} {
		if err := os.MkdirAll(p, 0o700); err != nil {
			return Dirs{}, err
		}
	}
	return d, nil
}

// LibraryPath returns the default library file location.
func (d Dirs) LibraryPath() string {
	return filepath.Join(d.Config, "library.json")
}

// SettingsPath returns the default settings file location.
func (d Dirs) SettingsPath() string {
	return filepath.Join(d.Config, "settings.yaml")
}
