package storage

import "github.com/julianstephens/habitflow/internal/models"

// Provider is the record store used by the command layer. Every method
// runs under the store's lock, one statement at a time.
type Provider interface {
	// Lifecycle
	Ping() error
	Close() error

	// Habits
	ListHabits() ([]models.Habit, error)
	AddHabit(models.Habit) error
	// UpdateHabit applies the non-nil fields of u. An empty update or an
	// unknown id is not an error.
	UpdateHabit(id string, u models.HabitUpdate) error
	// DeleteHabit removes the habit, its completions, and clears the habit
	// reference on its pomodoro sessions.
	DeleteHabit(id string) error

	// Completions
	ListCompletions() ([]models.HabitCompletion, error)
	AddCompletion(models.HabitCompletion) error
	DeleteCompletion(id string) error

	// Mood entries
	ListMoodEntries() ([]models.MoodEntry, error)
	AddMoodEntry(models.MoodEntry) error
	UpdateMoodEntry(id string, u models.MoodEntryUpdate) error
	DeleteMoodEntry(id string) error

	// Pomodoro sessions
	ListPomodoroSessions() ([]models.PomodoroSession, error)
	AddPomodoroSession(models.PomodoroSession) error

	// Achievements
	ListAchievements() ([]models.Achievement, error)
	AddAchievement(models.Achievement) error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Utils
	Path() string
}
