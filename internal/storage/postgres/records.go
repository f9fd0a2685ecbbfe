package postgres

import (
	apperrors "github.com/julianstephens/habitflow/internal/errors"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/storage"
)

func (s *Store) ListHabits() ([]models.Habit, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT " + storage.HabitColumns + " FROM habits ORDER BY created_at DESC")
	if err != nil {
		return nil, apperrors.Storage("list habits", err)
	}
	habits, err := storage.CollectRows(rows, storage.ScanHabit)
	if err != nil {
		return nil, apperrors.Storage("list habits", err)
	}
	return habits, nil
}

func (s *Store) AddHabit(h models.Habit) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO habits (`+storage.HabitColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		h.ID, h.Name, storage.NullString(h.Description), h.Icon, h.Color, string(h.Frequency),
		h.TargetCount, storage.FormatTime(h.CreatedAt), storage.BoolToInt(h.Archived),
	)
	if err != nil {
		return insertError("add habit", err)
	}
	return nil
}

func (s *Store) UpdateHabit(id string, u models.HabitUpdate) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	query, args, err := storage.BuildUpdate("habits", id, storage.HabitAssignments(u), storage.DollarN)
	if err != nil {
		return apperrors.Storage("update habit", err)
	}
	if query == "" {
		return nil
	}

	return s.exec("update habit", query, args...)
}

func (s *Store) DeleteHabit(id string) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	return s.exec("delete habit", "DELETE FROM habits WHERE id = $1", id)
}

func (s *Store) ListCompletions() ([]models.HabitCompletion, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT " + storage.CompletionColumns + " FROM habit_completions ORDER BY completed_at DESC")
	if err != nil {
		return nil, apperrors.Storage("list completions", err)
	}
	completions, err := storage.CollectRows(rows, storage.ScanCompletion)
	if err != nil {
		return nil, apperrors.Storage("list completions", err)
	}
	return completions, nil
}

func (s *Store) AddCompletion(c models.HabitCompletion) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO habit_completions (`+storage.CompletionColumns+`)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.HabitID, storage.FormatTime(c.CompletedAt), c.Count, storage.NullString(c.Notes),
	)
	if err != nil {
		return insertError("add completion", err)
	}
	return nil
}

func (s *Store) DeleteCompletion(id string) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	return s.exec("delete completion", "DELETE FROM habit_completions WHERE id = $1", id)
}

func (s *Store) ListMoodEntries() ([]models.MoodEntry, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT " + storage.MoodColumns + " FROM mood_entries ORDER BY created_at DESC")
	if err != nil {
		return nil, apperrors.Storage("list mood entries", err)
	}
	entries, err := storage.CollectRows(rows, storage.ScanMoodEntry)
	if err != nil {
		return nil, apperrors.Storage("list mood entries", err)
	}
	return entries, nil
}

func (s *Store) AddMoodEntry(m models.MoodEntry) error {
	tags, err := storage.EncodeTags(m.Tags)
	if err != nil {
		return apperrors.Storage("add mood entry", err)
	}

	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	_, err = s.db.Exec(`
		INSERT INTO mood_entries (`+storage.MoodColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.MoodLevel, m.Emoji, storage.NullString(m.Journal), tags, storage.FormatTime(m.CreatedAt),
	)
	if err != nil {
		return insertError("add mood entry", err)
	}
	return nil
}

func (s *Store) UpdateMoodEntry(id string, u models.MoodEntryUpdate) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	set, err := storage.MoodAssignments(u)
	if err != nil {
		return apperrors.Storage("update mood entry", err)
	}
	query, args, err := storage.BuildUpdate("mood_entries", id, set, storage.DollarN)
	if err != nil {
		return apperrors.Storage("update mood entry", err)
	}
	if query == "" {
		return nil
	}

	return s.exec("update mood entry", query, args...)
}

func (s *Store) DeleteMoodEntry(id string) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	return s.exec("delete mood entry", "DELETE FROM mood_entries WHERE id = $1", id)
}

func (s *Store) ListPomodoroSessions() ([]models.PomodoroSession, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT " + storage.PomodoroColumns + " FROM pomodoro_sessions ORDER BY started_at DESC")
	if err != nil {
		return nil, apperrors.Storage("list pomodoro sessions", err)
	}
	sessions, err := storage.CollectRows(rows, storage.ScanPomodoroSession)
	if err != nil {
		return nil, apperrors.Storage("list pomodoro sessions", err)
	}
	return sessions, nil
}

func (s *Store) AddPomodoroSession(p models.PomodoroSession) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO pomodoro_sessions (`+storage.PomodoroColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, storage.NullString(p.HabitID), p.Duration, string(p.Type), storage.BoolToInt(p.Completed),
		storage.FormatTime(p.StartedAt), storage.FormatOptionalTime(p.EndedAt),
	)
	if err != nil {
		return insertError("add pomodoro session", err)
	}
	return nil
}

func (s *Store) ListAchievements() ([]models.Achievement, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT " + storage.AchievementColumns + " FROM achievements ORDER BY unlocked_at DESC")
	if err != nil {
		return nil, apperrors.Storage("list achievements", err)
	}
	achievements, err := storage.CollectRows(rows, storage.ScanAchievement)
	if err != nil {
		return nil, apperrors.Storage("list achievements", err)
	}
	return achievements, nil
}

func (s *Store) AddAchievement(a models.Achievement) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO achievements (`+storage.AchievementColumns+`)
		VALUES ($1, $2, $3, $4)`,
		a.ID, string(a.Type), storage.FormatTime(a.UnlockedAt), storage.EncodeData(a.Data),
	)
	if err != nil {
		return insertError("add achievement", err)
	}
	return nil
}
