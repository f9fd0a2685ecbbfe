package sqlite

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/julianstephens/habitflow/internal/errors"
	"github.com/julianstephens/habitflow/internal/models"
)

func TestHabitRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		habit models.Habit
	}{
		{
			name:  "minimal",
			habit: testHabit("h1", base),
		},
		{
			name: "all fields",
			habit: models.Habit{
				ID:          "h2",
				Name:        "Meditate",
				Description: ptr("ten minutes, eyes closed"),
				Icon:        "🧘",
				Color:       "#10b981",
				Frequency:   models.FrequencyWeekly,
				TargetCount: 3,
				CreatedAt:   time.Date(2024, 2, 29, 23, 59, 59, 999, time.UTC),
				Archived:    true,
			},
		},
		{
			name: "non-UTC creation time",
			habit: models.Habit{
				ID:          "h3",
				Name:        "Stretch",
				Icon:        "🤸",
				Color:       "#fff",
				Frequency:   models.FrequencyCustom,
				TargetCount: 2,
				CreatedAt:   time.Date(2024, 6, 1, 7, 30, 0, 0, time.FixedZone("EST", -5*60*60)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := setupTestStore(t)
			require.NoError(t, store.AddHabit(tt.habit))

			got, err := store.ListHabits()
			require.NoError(t, err)
			require.Len(t, got, 1)
			if diff := cmp.Diff(tt.habit, got[0]); diff != "" {
				t.Errorf("habit mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListHabitsEmpty(t *testing.T) {
	store := setupTestStore(t)

	habits, err := store.ListHabits()
	require.NoError(t, err)
	assert.NotNil(t, habits)
	assert.Empty(t, habits)
}

func TestListHabitsNewestFirst(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.AddHabit(testHabit("old", base)))
	require.NoError(t, store.AddHabit(testHabit("new", base.Add(48*time.Hour))))
	require.NoError(t, store.AddHabit(testHabit("mid", base.Add(time.Nanosecond))))

	habits, err := store.ListHabits()
	require.NoError(t, err)

	ids := make([]string, len(habits))
	for i, h := range habits {
		ids[i] = h.ID
	}
	assert.Equal(t, []string{"new", "mid", "old"}, ids)
}

func TestDuplicateHabitRejected(t *testing.T) {
	store := setupTestStore(t)

	first := testHabit("h1", base)
	require.NoError(t, store.AddHabit(first))

	second := testHabit("h1", base.Add(time.Hour))
	second.Name = "Write"
	err := store.AddHabit(second)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.ErrorIs(t, err, apperrors.ErrStorage)

	habits, err := store.ListHabits()
	require.NoError(t, err)
	require.Len(t, habits, 1)
	if diff := cmp.Diff(first, habits[0]); diff != "" {
		t.Errorf("first habit changed (-want +got):\n%s", diff)
	}
}

func TestUpdateHabit(t *testing.T) {
	tests := []struct {
		name   string
		update models.HabitUpdate
		want   func(h models.Habit) models.Habit
	}{
		{
			name:   "empty update leaves row unchanged",
			update: models.HabitUpdate{},
			want:   func(h models.Habit) models.Habit { return h },
		},
		{
			name:   "rename only",
			update: models.HabitUpdate{Name: ptr("Read fiction")},
			want: func(h models.Habit) models.Habit {
				h.Name = "Read fiction"
				return h
			},
		},
		{
			name: "several fields",
			update: models.HabitUpdate{
				Description: ptr("before bed"),
				Icon:        ptr("📖"),
				Color:       ptr("#000"),
				Archived:    ptr(true),
			},
			want: func(h models.Habit) models.Habit {
				h.Description = ptr("before bed")
				h.Icon = "📖"
				h.Color = "#000"
				h.Archived = true
				return h
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := setupTestStore(t)
			h := testHabit("h1", base)
			require.NoError(t, store.AddHabit(h))

			require.NoError(t, store.UpdateHabit("h1", tt.update))

			habits, err := store.ListHabits()
			require.NoError(t, err)
			require.Len(t, habits, 1)
			if diff := cmp.Diff(tt.want(h), habits[0]); diff != "" {
				t.Errorf("habit mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateHabitArchiveToggle(t *testing.T) {
	store := setupTestStore(t)
	require.NoError(t, store.AddHabit(testHabit("h1", base)))

	require.NoError(t, store.UpdateHabit("h1", models.HabitUpdate{Archived: ptr(true)}))
	require.NoError(t, store.UpdateHabit("h1", models.HabitUpdate{Archived: ptr(false)}))

	habits, err := store.ListHabits()
	require.NoError(t, err)
	assert.False(t, habits[0].Archived)
}

func TestMissingIDIsNotAnError(t *testing.T) {
	store := setupTestStore(t)
	require.NoError(t, store.AddHabit(testHabit("h1", base)))

	assert.NoError(t, store.UpdateHabit("missing", models.HabitUpdate{Name: ptr("x")}))
	assert.NoError(t, store.DeleteHabit("missing"))
	assert.NoError(t, store.DeleteCompletion("missing"))
	assert.NoError(t, store.UpdateMoodEntry("missing", models.MoodEntryUpdate{MoodLevel: ptr(3)}))
	assert.NoError(t, store.DeleteMoodEntry("missing"))

	habits, err := store.ListHabits()
	require.NoError(t, err)
	require.Len(t, habits, 1)
	if diff := cmp.Diff(testHabit("h1", base), habits[0]); diff != "" {
		t.Errorf("unrelated habit changed (-want +got):\n%s", diff)
	}
}

func TestDeleteHabitCascades(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.AddHabit(testHabit("h1", base)))
	require.NoError(t, store.AddHabit(testHabit("h2", base)))
	require.NoError(t, store.AddCompletion(models.HabitCompletion{ID: "c1", HabitID: "h1", CompletedAt: base, Count: 1}))
	require.NoError(t, store.AddCompletion(models.HabitCompletion{ID: "c2", HabitID: "h2", CompletedAt: base, Count: 1}))
	require.NoError(t, store.AddPomodoroSession(models.PomodoroSession{
		ID: "p1", HabitID: ptr("h1"), Duration: 1500, Type: models.SessionWork, StartedAt: base,
	}))

	require.NoError(t, store.DeleteHabit("h1"))

	completions, err := store.ListCompletions()
	require.NoError(t, err)
	require.Len(t, completions, 1)
	assert.Equal(t, "c2", completions[0].ID)

	sessions, err := store.ListPomodoroSessions()
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "p1", sessions[0].ID)
	assert.Nil(t, sessions[0].HabitID)
}

func TestExampleScenario(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.AddHabit(models.Habit{
		ID: "h1", Name: "Read", Icon: "book", Color: "#fff",
		Frequency: models.FrequencyDaily, TargetCount: 1, CreatedAt: base,
	}))
	require.NoError(t, store.AddCompletion(models.HabitCompletion{ID: "c1", HabitID: "h1", CompletedAt: base, Count: 1}))

	habits, err := store.ListHabits()
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, "h1", habits[0].ID)

	completions, err := store.ListCompletions()
	require.NoError(t, err)
	require.Len(t, completions, 1)
	assert.Equal(t, "c1", completions[0].ID)

	require.NoError(t, store.DeleteHabit("h1"))

	completions, err = store.ListCompletions()
	require.NoError(t, err)
	assert.Empty(t, completions)
}

func TestConcurrentCallersAreSerialized(t *testing.T) {
	store := setupTestStore(t)

	const n = 20
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			id := fmt.Sprintf("h%02d", i)
			if err := store.AddHabit(testHabit(id, base.Add(time.Duration(i)*time.Minute))); err != nil {
				return err
			}
			if err := store.UpdateHabit(id, models.HabitUpdate{Name: ptr("renamed " + id)}); err != nil {
				return err
			}
			_, err := store.ListHabits()
			return err
		})
	}
	require.NoError(t, g.Wait())

	habits, err := store.ListHabits()
	require.NoError(t, err)
	require.Len(t, habits, n)
	for _, h := range habits {
		assert.Equal(t, "renamed "+h.ID, h.Name)
	}
}
