package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/habitflow/internal/models"
)

// Assignment is one "column = value" pair of an UPDATE
type Assignment struct {
	Column string
	Value  any
}

// updatable is the closed set of columns a partial update may touch.
// Column names are never taken from caller input.
var updatable = map[string]map[string]bool{
	"habits": {
		"name":        true,
		"description": true,
		"icon":        true,
		"color":       true,
		"archived":    true,
	},
	"mood_entries": {
		"mood_level": true,
		"emoji":      true,
		"journal":    true,
		"tags":       true,
	},
}

// Placeholder renders the bind marker for the n-th argument (1-based)
type Placeholder func(n int) string

func QuestionMark(int) string { return "?" }

func DollarN(n int) string { return "$" + strconv.Itoa(n) }

// HabitAssignments lists the columns set by u, in a fixed order
func HabitAssignments(u models.HabitUpdate) []Assignment {
	var set []Assignment
	if u.Name != nil {
		set = append(set, Assignment{"name", *u.Name})
	}
	if u.Description != nil {
		set = append(set, Assignment{"description", *u.Description})
	}
	if u.Icon != nil {
		set = append(set, Assignment{"icon", *u.Icon})
	}
	if u.Color != nil {
		set = append(set, Assignment{"color", *u.Color})
	}
	if u.Archived != nil {
		set = append(set, Assignment{"archived", BoolToInt(*u.Archived)})
	}
	return set
}

// MoodAssignments lists the columns set by u. Tags are encoded as JSON.
func MoodAssignments(u models.MoodEntryUpdate) ([]Assignment, error) {
	var set []Assignment
	if u.MoodLevel != nil {
		set = append(set, Assignment{"mood_level", *u.MoodLevel})
	}
	if u.Emoji != nil {
		set = append(set, Assignment{"emoji", *u.Emoji})
	}
	if u.Journal != nil {
		set = append(set, Assignment{"journal", *u.Journal})
	}
	if u.Tags != nil {
		tags, err := EncodeTags(*u.Tags)
		if err != nil {
			return nil, err
		}
		set = append(set, Assignment{"tags", tags})
	}
	return set, nil
}

// BuildUpdate renders "UPDATE table SET a = ?, b = ? WHERE id = ?" and its
// arguments. It returns an empty query when set is empty; callers skip the
// statement in that case.
func BuildUpdate(table, id string, set []Assignment, ph Placeholder) (string, []any, error) {
	if len(set) == 0 {
		return "", nil, nil
	}
	allowed, ok := updatable[table]
	if !ok {
		return "", nil, fmt.Errorf("table %q does not support partial updates", table)
	}

	clauses := make([]string, 0, len(set))
	args := make([]any, 0, len(set)+1)
	for i, a := range set {
		if !allowed[a.Column] {
			return "", nil, fmt.Errorf("column %q is not updatable on %s", a.Column, table)
		}
		clauses = append(clauses, a.Column+" = "+ph(i+1))
		args = append(args, a.Value)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = %s", table, strings.Join(clauses, ", "), ph(len(set)+1))
	return query, args, nil
}
