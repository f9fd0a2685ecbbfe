package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/julianstephens/habitflow/internal/logger"
)

// FormatTime renders t in the fixed-width UTC layout used by every
// timestamp column, so ORDER BY on the text is chronological.
func FormatTime(t time.Time) string {
	return t.UTC().Format(constants.TimestampFormat)
}

// ParseTime accepts any RFC 3339 text, including values written by other tools.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

func FormatOptionalTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: FormatTime(*t), Valid: true}
}

func ParseOptionalTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := ParseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func StringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// BoolToInt maps a flag to the 0/1 integer stored in boolean columns
func BoolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// EncodeTags serializes a tag list as a JSON array. A nil list is stored as [].
func EncodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(b), nil
}

// DecodeTags never fails: NULL or unreadable text yields an empty list.
func DecodeTags(s sql.NullString) []string {
	if !s.Valid || s.String == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(s.String), &tags); err != nil {
		logger.Debug("Ignoring undecodable tags", "value", s.String, "error", err)
		return []string{}
	}
	if tags == nil {
		return []string{}
	}
	return tags
}

// EncodeData stores achievement data only when present
func EncodeData(data json.RawMessage) sql.NullString {
	if len(data) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(data), Valid: true}
}

// DecodeData returns nil for NULL or text that is not valid JSON, so one bad
// row does not fail the whole list.
func DecodeData(s sql.NullString) json.RawMessage {
	if !s.Valid || s.String == "" {
		return nil
	}
	if !json.Valid([]byte(s.String)) {
		logger.Debug("Ignoring undecodable achievement data", "value", s.String)
		return nil
	}
	return json.RawMessage(s.String)
}
