// Package stats derives streaks and daily progress from stored records.
// Days are calendar days in the location of the "now" argument.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/julianstephens/habitflow/internal/models"
)

// HabitStats is a habit with its derived counters
type HabitStats struct {
	models.Habit
	CurrentStreak    int  `json:"currentStreak"`
	LongestStreak    int  `json:"longestStreak"`
	CompletedToday   bool `json:"completedToday"`
	TodayCount       int  `json:"todayCount"`
	TotalCompletions int  `json:"totalCompletions"`
}

// Progress summarizes today's completion across active habits
type Progress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// ForHabit computes the counters for h. completions may include other habits.
func ForHabit(h models.Habit, completions []models.HabitCompletion, now time.Time) HabitStats {
	out := HabitStats{Habit: h}
	today := dayOf(now, now.Location())

	var days []time.Time
	todayRecords := 0
	for _, c := range completions {
		if c.HabitID != h.ID {
			continue
		}
		out.TotalCompletions++
		d := dayOf(c.CompletedAt, now.Location())
		days = append(days, d)
		if d.Equal(today) {
			todayRecords++
			out.TodayCount += c.Count
		}
	}

	out.CompletedToday = todayRecords > 0 && todayRecords >= h.TargetCount
	out.CurrentStreak, out.LongestStreak = streaks(days, today)
	return out
}

// ForHabits computes stats for every non-archived habit, in input order
func ForHabits(habits []models.Habit, completions []models.HabitCompletion, now time.Time) []HabitStats {
	out := []HabitStats{}
	for _, h := range habits {
		if h.Archived {
			continue
		}
		out = append(out, ForHabit(h, completions, now))
	}
	return out
}

// TodayProgress counts how many active habits are completed today
func TodayProgress(habits []models.Habit, completions []models.HabitCompletion, now time.Time) Progress {
	var p Progress
	for _, s := range ForHabits(habits, completions, now) {
		p.Total++
		if s.CompletedToday {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	return p
}

// MoodStreak is the number of consecutive days with a mood entry, ending
// today or yesterday
func MoodStreak(entries []models.MoodEntry, now time.Time) int {
	days := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		days = append(days, dayOf(e.CreatedAt, now.Location()))
	}
	current, _ := streaks(days, dayOf(now, now.Location()))
	return current
}

// streaks returns the current and longest runs of consecutive days. The
// current run only counts when its latest day is today or yesterday.
func streaks(days []time.Time, today time.Time) (current, longest int) {
	if len(days) == 0 {
		return 0, 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	unique := []time.Time{days[0]}
	for _, d := range days[1:] {
		if !d.Equal(unique[len(unique)-1]) {
			unique = append(unique, d)
		}
	}

	run := 1
	longest = 1
	for i := 1; i < len(unique); i++ {
		if daysBetween(unique[i], unique[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	if daysBetween(unique[0], today) > 1 {
		return 0, longest
	}
	current = 1
	for i := 1; i < len(unique); i++ {
		if daysBetween(unique[i], unique[i-1]) != 1 {
			break
		}
		current++
	}
	return current, longest
}

// dayOf truncates t to midnight of its calendar day in loc
func dayOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// daysBetween counts calendar days from a to b, ignoring DST shifts
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
