package sqlite

import (
	apperrors "github.com/julianstephens/habitflow/internal/errors"
	"github.com/julianstephens/habitflow/internal/logger"
	"github.com/julianstephens/habitflow/internal/models"
	"github.com/julianstephens/habitflow/internal/storage"
)

// GetSettings starts from the defaults and overlays every stored key
func (s *Store) GetSettings() (models.Settings, error) {
	if err := s.lock(); err != nil {
		return models.Settings{}, err
	}
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, apperrors.Storage("get settings", err)
	}
	defer rows.Close()

	settings := models.DefaultSettings()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, apperrors.Storage("get settings", err)
		}
		if !storage.IsSettingKey(key) {
			logger.Debug("Ignoring unknown setting", "key", key)
			continue
		}
		if err := storage.ApplySetting(&settings, key, value); err != nil {
			return models.Settings{}, apperrors.Storage("get settings", err)
		}
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, apperrors.Storage("get settings", err)
	}
	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return apperrors.Storage("save settings", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return apperrors.Storage("save settings", err)
	}
	defer stmt.Close()

	for _, p := range storage.SettingsPairs(settings) {
		if _, err := stmt.Exec(p.Key, p.Value); err != nil {
			return apperrors.Storage("save settings", err)
		}
	}

	return apperrors.Storage("save settings", tx.Commit())
}
