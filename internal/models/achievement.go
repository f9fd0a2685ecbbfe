package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// AchievementType identifies an unlockable achievement
type AchievementType string

// Achievement is an unlocked achievement. Data is an opaque JSON payload
// owned by the caller.
type Achievement struct {
	ID         string          `json:"id"`
	Type       AchievementType `json:"type"`
	UnlockedAt time.Time       `json:"unlockedAt"`
	Data       json.RawMessage `json:"data,omitempty"`
}

func (a *Achievement) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("achievement id cannot be empty")
	}
	if a.Type == "" {
		return fmt.Errorf("achievement type cannot be empty")
	}
	if len(a.Data) > 0 && !json.Valid(a.Data) {
		return fmt.Errorf("achievement data is not valid JSON")
	}
	return nil
}

// AchievementDefinition describes a known achievement type
type AchievementDefinition struct {
	Type        AchievementType `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	XPReward    int             `json:"xpReward"`
}

// AchievementCatalog lists every achievement the UI knows how to award.
// The store accepts any type; this is display metadata only.
var AchievementCatalog = []AchievementDefinition{
	{"streak_7", "Week Warrior", "Maintain a 7-day streak", 50},
	{"streak_30", "Monthly Master", "Maintain a 30-day streak", 200},
	{"streak_100", "Century Champion", "Maintain a 100-day streak", 500},
	{"streak_365", "Year Legend", "Maintain a 365-day streak", 2000},
	{"first_habit", "First Step", "Create your first habit", 10},
	{"habits_5", "Habit Builder", "Create 5 habits", 50},
	{"habits_10", "Habit Master", "Create 10 habits", 100},
	{"perfect_week", "Perfect Week", "Complete all habits for 7 days", 100},
	{"perfect_month", "Perfect Month", "Complete all habits for 30 days", 500},
	{"mood_streak_7", "Self-Aware", "Log your mood for 7 days straight", 30},
	{"pomodoro_10", "Focus Finder", "Complete 10 Pomodoro sessions", 30},
	{"pomodoro_50", "Focus Fighter", "Complete 50 Pomodoro sessions", 100},
	{"pomodoro_100", "Focus Legend", "Complete 100 Pomodoro sessions", 250},
	{"early_bird", "Early Bird", "Complete a habit before 6 AM", 25},
	{"night_owl", "Night Owl", "Complete a habit after midnight", 25},
	{"level_5", "Rising Star", "Reach level 5", 0},
	{"level_10", "Dedicated", "Reach level 10", 0},
	{"level_25", "Committed", "Reach level 25", 0},
	{"level_50", "Lifestyle Master", "Reach level 50", 0},
}

// LookupAchievement returns the catalog entry for t, if any
func LookupAchievement(t AchievementType) (AchievementDefinition, bool) {
	for _, def := range AchievementCatalog {
		if def.Type == t {
			return def, true
		}
	}
	return AchievementDefinition{}, false
}

// LockedAchievements returns catalog entries with no matching unlocked achievement
func LockedAchievements(unlocked []Achievement) []AchievementDefinition {
	have := make(map[AchievementType]bool, len(unlocked))
	for _, a := range unlocked {
		have[a.Type] = true
	}

	var locked []AchievementDefinition
	for _, def := range AchievementCatalog {
		if !have[def.Type] {
			locked = append(locked, def)
		}
	}
	return locked
}
