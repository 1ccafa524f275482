package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings is the small key/value record loaded at startup and rewritten
// on each change. Speech keys are stored for compatibility with other
// front-ends; this application does not drive a speech engine itself.
type Settings struct {
	Theme         string  `mapstructure:"theme" yaml:"theme"`
	IconSize      string  `mapstructure:"icon_size" yaml:"icon_size"`
	SpeechEngine  string  `mapstructure:"speech_engine" yaml:"speech_engine"`
	SpeechSpeed   float64 `mapstructure:"speech_speed" yaml:"speech_speed"`
	Notifications bool    `mapstructure:"notifications" yaml:"notifications"`
	Debug         bool    `mapstructure:"debug" yaml:"debug"`
	WelcomeShown  bool    `mapstructure:"welcome_shown" yaml:"welcome_shown"`
}

func defaultSettings() *Settings {
	return &Settings{
		Theme:         "system",
		IconSize:      "medium",
		SpeechEngine:  "auto",
		SpeechSpeed:   1.0,
		Notifications: true,
	}
}

// LoadSettings reads the settings file at path. A missing file yields the
// defaults without error.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("theme", "system")
	v.SetDefault("icon_size", "medium")
	v.SetDefault("speech_engine", "auto")
	v.SetDefault("speech_speed", 1.0)
	v.SetDefault("notifications", true)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return defaultSettings(), nil
		}
		if _, ok := err.(*os.PathError); ok {
			return defaultSettings(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultSettings(), nil
		}
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	s := defaultSettings()
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return s, nil
}

// SaveSettings writes the settings to a YAML file at path, creating parent
// directories if needed.
func SaveSettings(path string, s *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("theme", s.Theme)
	v.Set("icon_size", s.IconSize)
	v.Set("speech_engine", s.SpeechEngine)
	v.Set("speech_speed", s.SpeechSpeed)
	v.Set("notifications", s.Notifications)
	v.Set("debug", s.Debug)
	v.Set("welcome_shown", s.WelcomeShown)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing settings to %s: %w", path, err)
	}
	return nil
}
