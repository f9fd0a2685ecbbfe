package models

import (
	"fmt"
	"time"
)

// SessionType is the kind of pomodoro interval
type SessionType string

const (
	SessionWork       SessionType = "work"
	SessionShortBreak SessionType = "short_break"
	SessionLongBreak  SessionType = "long_break"
)

// PomodoroSession is one timed focus or break interval. Sessions survive
// deletion of the habit they were attached to; HabitID is cleared instead.
type PomodoroSession struct {
	ID        string      `json:"id"`
	HabitID   *string     `json:"habitId,omitempty"`
	Duration  int         `json:"duration"` // seconds
	Type      SessionType `json:"type"`
	Completed bool        `json:"completed"`
	StartedAt time.Time   `json:"startedAt"`
	EndedAt   *time.Time  `json:"endedAt,omitempty"`
}

func (p *PomodoroSession) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("session id cannot be empty")
	}
	switch p.Type {
	case SessionWork, SessionShortBreak, SessionLongBreak:
	default:
		return fmt.Errorf("invalid session type %q (expected work, short_break or long_break)", p.Type)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("session duration must be positive")
	}
	if p.EndedAt != nil && p.EndedAt.Before(p.StartedAt) {
		return fmt.Errorf("session cannot end before it starts")
	}
	return nil
}
