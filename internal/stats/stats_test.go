package stats

import (
	"testing"
	"time"

	"github.com/julianstephens/habitflow/internal/models"
)

var now = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return now.AddDate(0, 0, -n)
}

func completionsOn(habitID string, days ...int) []models.HabitCompletion {
	out := make([]models.HabitCompletion, 0, len(days))
	for i, d := range days {
		out = append(out, models.HabitCompletion{
			ID:          habitID + "-" + string(rune('a'+i)),
			HabitID:     habitID,
			CompletedAt: daysAgo(d),
			Count:       1,
		})
	}
	return out
}

func TestStreaks(t *testing.T) {
	tests := []struct {
		name        string
		days        []int
		wantCurrent int
		wantLongest int
	}{
		{"no completions", nil, 0, 0},
		{"today only", []int{0}, 1, 1},
		{"yesterday keeps streak alive", []int{1, 2, 3}, 3, 3},
		{"two days ago breaks streak", []int{2, 3, 4}, 0, 3},
		{"gap ends current run", []int{0, 1, 3, 4, 5, 6}, 2, 4},
		{"duplicates on one day count once", []int{0, 0, 0, 1}, 2, 2},
		{"unsorted input", []int{2, 0, 1}, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := models.Habit{ID: "h1", TargetCount: 1}
			s := ForHabit(h, completionsOn("h1", tt.days...), now)
			if s.CurrentStreak != tt.wantCurrent {
				t.Errorf("CurrentStreak = %d, want %d", s.CurrentStreak, tt.wantCurrent)
			}
			if s.LongestStreak != tt.wantLongest {
				t.Errorf("LongestStreak = %d, want %d", s.LongestStreak, tt.wantLongest)
			}
			if s.TotalCompletions != len(tt.days) {
				t.Errorf("TotalCompletions = %d, want %d", s.TotalCompletions, len(tt.days))
			}
		})
	}
}

func TestForHabitToday(t *testing.T) {
	completions := completionsOn("h1", 0, 0, 1)
	completions[0].Count = 3
	completions = append(completions, completionsOn("other", 0)...)

	tests := []struct {
		name          string
		target        int
		wantCompleted bool
	}{
		{"target met", 2, true},
		{"target not met", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ForHabit(models.Habit{ID: "h1", TargetCount: tt.target}, completions, now)
			if s.CompletedToday != tt.wantCompleted {
				t.Errorf("CompletedToday = %v, want %v", s.CompletedToday, tt.wantCompleted)
			}
			if s.TodayCount != 4 {
				t.Errorf("TodayCount = %d, want 4", s.TodayCount)
			}
			if s.TotalCompletions != 3 {
				t.Errorf("TotalCompletions = %d, want 3", s.TotalCompletions)
			}
		})
	}
}

func TestDaysFollowLocationOfNow(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	localNow := time.Date(2024, 3, 10, 8, 0, 0, 0, tokyo)
	// 2024-03-09T20:00Z is already the 10th in Tokyo
	c := models.HabitCompletion{ID: "c1", HabitID: "h1", CompletedAt: time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC), Count: 1}

	s := ForHabit(models.Habit{ID: "h1", TargetCount: 1}, []models.HabitCompletion{c}, localNow)
	if !s.CompletedToday {
		t.Error("expected the completion to count for today in the caller's time zone")
	}
}

func TestTodayProgress(t *testing.T) {
	habits := []models.Habit{
		{ID: "a", TargetCount: 1},
		{ID: "b", TargetCount: 1},
		{ID: "c", TargetCount: 1},
		{ID: "archived", TargetCount: 1, Archived: true},
	}
	var completions []models.HabitCompletion
	completions = append(completions, completionsOn("a", 0)...)
	completions = append(completions, completionsOn("b", 1)...)
	completions = append(completions, completionsOn("archived", 0)...)

	p := TodayProgress(habits, completions, now)
	if p.Total != 3 || p.Completed != 1 || p.Percentage != 33 {
		t.Errorf("TodayProgress = %+v, want {Completed:1 Total:3 Percentage:33}", p)
	}

	empty := TodayProgress(nil, nil, now)
	if empty != (Progress{}) {
		t.Errorf("TodayProgress with no habits = %+v, want zero", empty)
	}
}

func TestMoodStreak(t *testing.T) {
	entries := []models.MoodEntry{
		{ID: "m1", CreatedAt: daysAgo(0)},
		{ID: "m2", CreatedAt: daysAgo(1)},
		{ID: "m3", CreatedAt: daysAgo(2)},
		{ID: "m4", CreatedAt: daysAgo(5)},
	}
	if got := MoodStreak(entries, now); got != 3 {
		t.Errorf("MoodStreak = %d, want 3", got)
	}
	if got := MoodStreak(entries[3:], now); got != 0 {
		t.Errorf("MoodStreak for stale entries = %d, want 0", got)
	}
}
