package storage

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/habitflow/internal/models"
)

// Column lists shared by the backends. Scan* functions expect exactly this order.
const (
	HabitColumns       = "id, name, description, icon, color, frequency, target_count, created_at, archived"
	CompletionColumns  = "id, habit_id, completed_at, count, notes"
	MoodColumns        = "id, mood_level, emoji, journal, tags, created_at"
	PomodoroColumns    = "id, habit_id, duration, type, completed, started_at, ended_at"
	AchievementColumns = "id, type, unlocked_at, data"
)

// Scanner is satisfied by *sql.Row and *sql.Rows
type Scanner interface {
	Scan(dest ...any) error
}

func ScanHabit(row Scanner) (models.Habit, error) {
	var h models.Habit
	var description sql.NullString
	var createdAt string
	var archived int64

	if err := row.Scan(&h.ID, &h.Name, &description, &h.Icon, &h.Color, &h.Frequency, &h.TargetCount, &createdAt, &archived); err != nil {
		return models.Habit{}, err
	}

	t, err := ParseTime(createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}
	h.CreatedAt = t
	h.Description = StringPtr(description)
	h.Archived = archived != 0
	return h, nil
}

func ScanCompletion(row Scanner) (models.HabitCompletion, error) {
	var c models.HabitCompletion
	var completedAt string
	var notes sql.NullString

	if err := row.Scan(&c.ID, &c.HabitID, &completedAt, &c.Count, &notes); err != nil {
		return models.HabitCompletion{}, err
	}

	t, err := ParseTime(completedAt)
	if err != nil {
		return models.HabitCompletion{}, fmt.Errorf("failed to parse completed_at for completion %s: %w", c.ID, err)
	}
	c.CompletedAt = t
	c.Notes = StringPtr(notes)
	return c, nil
}

// ScanMoodEntry decodes tags leniently; see DecodeTags
func ScanMoodEntry(row Scanner) (models.MoodEntry, error) {
	var m models.MoodEntry
	var journal, tags sql.NullString
	var createdAt string

	if err := row.Scan(&m.ID, &m.MoodLevel, &m.Emoji, &journal, &tags, &createdAt); err != nil {
		return models.MoodEntry{}, err
	}

	t, err := ParseTime(createdAt)
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("failed to parse created_at for mood entry %s: %w", m.ID, err)
	}
	m.CreatedAt = t
	m.Journal = StringPtr(journal)
	m.Tags = DecodeTags(tags)
	return m, nil
}

func ScanPomodoroSession(row Scanner) (models.PomodoroSession, error) {
	var p models.PomodoroSession
	var habitID, endedAt sql.NullString
	var startedAt string
	var completed int64

	if err := row.Scan(&p.ID, &habitID, &p.Duration, &p.Type, &completed, &startedAt, &endedAt); err != nil {
		return models.PomodoroSession{}, err
	}

	t, err := ParseTime(startedAt)
	if err != nil {
		return models.PomodoroSession{}, fmt.Errorf("failed to parse started_at for session %s: %w", p.ID, err)
	}
	p.StartedAt = t
	p.EndedAt, err = ParseOptionalTime(endedAt)
	if err != nil {
		return models.PomodoroSession{}, fmt.Errorf("failed to parse ended_at for session %s: %w", p.ID, err)
	}
	p.HabitID = StringPtr(habitID)
	p.Completed = completed != 0
	return p, nil
}

// ScanAchievement decodes data leniently; see DecodeData
func ScanAchievement(row Scanner) (models.Achievement, error) {
	var a models.Achievement
	var unlockedAt string
	var data sql.NullString

	if err := row.Scan(&a.ID, &a.Type, &unlockedAt, &data); err != nil {
		return models.Achievement{}, err
	}

	t, err := ParseTime(unlockedAt)
	if err != nil {
		return models.Achievement{}, fmt.Errorf("failed to parse unlocked_at for achievement %s: %w", a.ID, err)
	}
	a.UnlockedAt = t
	a.Data = DecodeData(data)
	return a, nil
}

// CollectRows drains rows through scan. The result is never nil.
func CollectRows[T any](rows *sql.Rows, scan func(Scanner) (T, error)) ([]T, error) {
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
