package sqlite

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
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
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

	query, args, err := storage.BuildUpdate("habits", id, storage.HabitAssignments(u), storage.QuestionMark)
	if err != nil {
		return apperrors.Storage("update habit", err)
	}
	if query == "" {
		return nil
	}

	return s.exec("update habit", query, args...)
}

// DeleteHabit relies on the foreign key actions for completions and sessions
func (s *Store) DeleteHabit(id string) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	return s.exec("delete habit", "DELETE FROM habits WHERE id = ?", id)
}
