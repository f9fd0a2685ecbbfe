package constants

const (
	SettingTheme                  = "theme"
	SettingSoundEnabled           = "sound_enabled"
	SettingNotificationsEnabled   = "notifications_enabled"
	SettingWorkDuration           = "pomodoro_work_duration"
	SettingShortBreakDuration     = "pomodoro_short_break_duration"
	SettingLongBreakDuration      = "pomodoro_long_break_duration"
	SettingSessionsUntilLongBreak = "pomodoro_sessions_until_long_break"
	SettingAutoStartBreaks        = "pomodoro_auto_start_breaks"
	SettingAutoStartWork          = "pomodoro_auto_start_work"

	// Default Settings Values (durations in seconds)
	DefaultTheme                  = "system"
	DefaultSoundEnabled           = true
	DefaultNotificationsEnabled   = true
	DefaultWorkDuration           = 25 * 60
	DefaultShortBreakDuration     = 5 * 60
	DefaultLongBreakDuration      = 15 * 60
	DefaultSessionsUntilLongBreak = 4
	DefaultAutoStartBreaks        = false
	DefaultAutoStartWork          = false
)
