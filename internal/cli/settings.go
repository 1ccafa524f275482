package cli

import (
	"fmt"
	"strconv"

	"pictoplan/internal/config"
)

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	s := ctx.Settings
	fmt.Printf("theme:          %s\n", s.Theme)
	fmt.Printf("icon_size:      %s\n", s.IconSize)
	fmt.Printf("speech_engine:  %s\n", s.SpeechEngine)
	fmt.Printf("speech_speed:   %.1f\n", s.SpeechSpeed)
	fmt.Printf("notifications:  %t\n", s.Notifications)
	fmt.Printf("debug:          %t\n", s.Debug)
	fmt.Printf("welcome_shown:  %t\n", s.WelcomeShown)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting key."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	s := ctx.Settings

	switch c.Key {
	case "theme":
		s.Theme = c.Value
	case "icon_size":
		s.IconSize = c.Value
	case "speech_engine":
		s.SpeechEngine = c.Value
	case "speech_speed":
		v, err := strconv.ParseFloat(c.Value, 64)
		if err != nil {
			return fmt.Errorf("speech_speed must be a number: %w", err)
		}
		s.SpeechSpeed = v
	case "notifications", "debug", "welcome_shown":
		v, err := strconv.ParseBool(c.Value)
		if err != nil {
			return fmt.Errorf("%s must be true or false: %w", c.Key, err)
		}
		switch c.Key {
		case "notifications":
			s.Notifications = v
		case "debug":
			s.Debug = v
		case "welcome_shown":
			s.WelcomeShown = v
		}
	default:
		return fmt.Errorf("unknown setting: %s", c.Key)
	}

	if err := config.SaveSettings(ctx.Dirs.SettingsPath(), s); err != nil {
		return err
	}
	fmt.Printf("Set %s = %s\n", c.Key, c.Value)
	return nil
}
