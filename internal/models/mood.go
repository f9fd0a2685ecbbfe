package models

import (
	"fmt"
	"time"
)

const (
	MinMoodLevel = 1
	MaxMoodLevel = 5
)

// MoodEntry is a single mood check-in with optional journal text
type MoodEntry struct {
	ID        string    `json:"id"`
	MoodLevel int       `json:"moodLevel"`
	Emoji     string    `json:"emoji"`
	Journal   *string   `json:"journal,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *MoodEntry) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("mood entry id cannot be empty")
	}
	if m.MoodLevel < MinMoodLevel || m.MoodLevel > MaxMoodLevel {
		return fmt.Errorf("mood level must be between %d and %d", MinMoodLevel, MaxMoodLevel)
	}
	if m.Emoji == "" {
		return fmt.Errorf("mood emoji cannot be empty")
	}
	return nil
}

// MoodEntryUpdate is a partial update of a mood entry. Nil fields are left
// unchanged; a non-nil Tags replaces the whole tag list.
type MoodEntryUpdate struct {
	MoodLevel *int      `json:"moodLevel,omitempty"`
	Emoji     *string   `json:"emoji,omitempty"`
	Journal   *string   `json:"journal,omitempty"`
	Tags      *[]string `json:"tags,omitempty"`
}

// IsEmpty reports whether the update would touch no columns
func (u MoodEntryUpdate) IsEmpty() bool {
	return u.MoodLevel == nil && u.Emoji == nil && u.Journal == nil && u.Tags == nil
}

// MoodEmoji is the default emoji shown for each mood level
var MoodEmoji = map[int]string{
	1: "😢",
	2: "😕",
	3: "😐",
	4: "🙂",
	5: "😄",
}
