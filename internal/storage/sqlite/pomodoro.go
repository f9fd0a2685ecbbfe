package sqlite

import (
	apperrors "github.com/julianstephens/habitflow/internal/errors"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/storage"
)

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
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, storage.NullString(p.HabitID), p.Duration, string(p.Type), storage.BoolToInt(p.Completed),
		storage.FormatTime(p.StartedAt), storage.FormatOptionalTime(p.EndedAt),
	)
	if err != nil {
		return insertError("add pomodoro session", err)
	}
	return nil
}
