package sqlite

import (
	apperrors "github.com/julianstephens/habitflow/internal/errors"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/storage"
)

// ListAchievements returns every row; a row whose data is not valid JSON
// comes back with nil Data instead of failing the list.
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
		VALUES (?, ?, ?, ?)`,
		a.ID, string(a.Type), storage.FormatTime(a.UnlockedAt), storage.EncodeData(a.Data),
	)
	if err != nil {
		return insertError("add achievement", err)
	}
	return nil
}
