package models

import (
	"fmt"
	"strings"
	"time"
)

// Frequency describes how often a habit is meant to be done
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

// Habit represents a recurring practice to track
type Habit struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Frequency   Frequency `json:"frequency"`
	TargetCount int       `json:"targetCount"`
	CreatedAt   time.Time `json:"createdAt"`
	Archived    bool      `json:"archived"` // soft-delete flag, rows are never hidden by the store
}

func (h *Habit) Validate() error {
	if h.ID == "" {
		return fmt.Errorf("habit id cannot be empty")
	}
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	switch h.Frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
	default:
		return fmt.Errorf("invalid frequency %q (expected daily, weekly or custom)", h.Frequency)
	}
	if h.TargetCount < 1 {
		return fmt.Errorf("target count must be at least 1")
	}
	return nil
}

// HabitCompletion records one check-off of a habit
type HabitCompletion struct {
	ID          string    `json:"id"`
	HabitID     string    `json:"habitId"`
	CompletedAt time.Time `json:"completedAt"`
	Count       int       `json:"count"`
	Notes       *string   `json:"notes,omitempty"`
}

func (c *HabitCompletion) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("completion id cannot be empty")
	}
	if c.HabitID == "" {
		return fmt.Errorf("completion must reference a habit")
	}
	if c.Count < 1 {
		return fmt.Errorf("completion count must be at least 1")
	}
	return nil
}

// HabitUpdate is a partial update of a habit. Nil fields are left unchanged.
type HabitUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
	Archived    *bool   `json:"archived,omitempty"`
}

// IsEmpty reports whether the update would touch no columns
func (u HabitUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Icon == nil && u.Color == nil && u.Archived == nil
}
