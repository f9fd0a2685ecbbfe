package sqlite

import (
	apperrors "github.com/julianstephens/habitflow/internal/errors"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/storage"
)

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

// AddCompletion fails with a storage error when HabitID names no habit
func (s *Store) AddCompletion(c models.HabitCompletion) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO habit_completions (`+storage.CompletionColumns+`)
		VALUES (?, ?, ?, ?, ?)`,
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

	return s.exec("delete completion", "DELETE FROM habit_completions WHERE id = ?", id)
}
