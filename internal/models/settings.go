package models

import (
	"fmt"

	"github.com/julianstephens/habitflow/internal/constants"
)

// Settings represents UI preferences persisted in the settings table
type Settings struct {
	Theme                  string `json:"theme"`                  // "light", "dark" or "system"
	SoundEnabled           bool   `json:"soundEnabled"`           // whether UI sounds play
	NotificationsEnabled   bool   `json:"notificationsEnabled"`   // whether desktop notifications are shown
	WorkDuration           int    `json:"workDuration"`           // pomodoro work interval in seconds
	ShortBreakDuration     int    `json:"shortBreakDuration"`     // short break in seconds
	LongBreakDuration      int    `json:"longBreakDuration"`      // long break in seconds
	SessionsUntilLongBreak int    `json:"sessionsUntilLongBreak"` // work sessions before a long break
	AutoStartBreaks        bool   `json:"autoStartBreaks"`
	AutoStartWork          bool   `json:"autoStartWork"`
}

// DefaultSettings returns the settings used for any key not yet stored
func DefaultSettings() Settings {
	return Settings{
		Theme:                  constants.DefaultTheme,
		SoundEnabled:           constants.DefaultSoundEnabled,
		NotificationsEnabled:   constants.DefaultNotificationsEnabled,
		WorkDuration:           constants.DefaultWorkDuration,
		ShortBreakDuration:     constants.DefaultShortBreakDuration,
		LongBreakDuration:      constants.DefaultLongBreakDuration,
		SessionsUntilLongBreak: constants.DefaultSessionsUntilLongBreak,
		AutoStartBreaks:        constants.DefaultAutoStartBreaks,
		AutoStartWork:          constants.DefaultAutoStartWork,
	}
}

func (s *Settings) Validate() error {
	switch s.Theme {
	case "light", "dark", "system":
	default:
		return fmt.Errorf("invalid theme %q (expected light, dark or system)", s.Theme)
	}
	if s.WorkDuration <= 0 || s.ShortBreakDuration <= 0 || s.LongBreakDuration <= 0 {
		return fmt.Errorf("pomodoro durations must be positive")
	}
	if s.SessionsUntilLongBreak < 1 {
		return fmt.Errorf("sessions until long break must be at least 1")
	}
	return nil
}
