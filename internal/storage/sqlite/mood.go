package sqlite

import (
	apperrors "github.com/julianstephens/habitflow/internal/errors"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/storage"
)

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
		VALUES (?, ?, ?, ?, ?, ?)`,
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
	query, args, err := storage.BuildUpdate("mood_entries", id, set, storage.QuestionMark)
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

	return s.exec("delete mood entry", "DELETE FROM mood_entries WHERE id = ?", id)
}
