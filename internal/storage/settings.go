package storage

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/models"
)

// SettingPair is one row of the settings table
type SettingPair struct {
	Key   string
	Value string
}

// SettingsPairs flattens settings into key/value rows in a stable order
func SettingsPairs(s models.Settings) []SettingPair {
	return []SettingPair{
		{constants.SettingTheme, s.Theme},
		{constants.SettingSoundEnabled, strconv.FormatBool(s.SoundEnabled)},
		{constants.SettingNotificationsEnabled, strconv.FormatBool(s.NotificationsEnabled)},
		{constants.SettingWorkDuration, strconv.Itoa(s.WorkDuration)},
		{constants.SettingShortBreakDuration, strconv.Itoa(s.ShortBreakDuration)},
		{constants.SettingLongBreakDuration, strconv.Itoa(s.LongBreakDuration)},
		{constants.SettingSessionsUntilLongBreak, strconv.Itoa(s.SessionsUntilLongBreak)},
		{constants.SettingAutoStartBreaks, strconv.FormatBool(s.AutoStartBreaks)},
		{constants.SettingAutoStartWork, strconv.FormatBool(s.AutoStartWork)},
	}
}

// ApplySetting parses value into the field named by key. s is left
// untouched when value does not parse.
func ApplySetting(s *models.Settings, key, value string) error {
	boolField := func(dst *bool) error {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", key, err)
		}
		*dst = v
		return nil
	}
	intField := func(dst *int) error {
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", key, err)
		}
		*dst = v
		return nil
	}

	switch key {
	case constants.SettingTheme:
		s.Theme = value
		return nil
	case constants.SettingSoundEnabled:
		return boolField(&s.SoundEnabled)
	case constants.SettingNotificationsEnabled:
		return boolField(&s.NotificationsEnabled)
	case constants.SettingWorkDuration:
		return intField(&s.WorkDuration)
	case constants.SettingShortBreakDuration:
		return intField(&s.ShortBreakDuration)
	case constants.SettingLongBreakDuration:
		return intField(&s.LongBreakDuration)
	case constants.SettingSessionsUntilLongBreak:
		return intField(&s.SessionsUntilLongBreak)
	case constants.SettingAutoStartBreaks:
		return boolField(&s.AutoStartBreaks)
	case constants.SettingAutoStartWork:
		return boolField(&s.AutoStartWork)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
}

// IsSettingKey reports whether key names a known setting
func IsSettingKey(key string) bool {
	for _, p := range SettingsPairs(models.DefaultSettings()) {
		if p.Key == key {
			return true
		}
	}
	return false
}
