package task

import (
	"slices"
	"strings"

	"taskpad/internal/model"
)

// SortKey names one of the list orderings. Plain comparison functions
// behind an enumerated key; there is no pluggable strategy type.
type SortKey string

const (
	SortByTitle   SortKey = "title"
	SortByDueDate SortKey = "due_date"
)

func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title":
		return SortByTitle, true
	case "due_date", "duedate", "due":
		return SortByDueDate, true
	}
	return "", false
}

// Sorted returns a new slice ordered by key. The input is never
// mutated, ties keep their original relative order, and an unknown key
// keeps the input order. An unset title sorts as the empty string; an
// unset due date sorts before every set one.
func Sorted(tasks []model.Task, key SortKey) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)

	switch key {
	case SortByTitle:
		slices.SortStableFunc(out, func(a, b model.Task) int {
			return strings.Compare(a.Title, b.Title)
		})
	case SortByDueDate:
		slices.SortStableFunc(out, compareDueDate)
	}
	return out
}

func compareDueDate(a, b model.Task) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return 0
	case a.DueDate == nil:
		return -1
	case b.DueDate == nil:
		return 1
	}
	return a.DueDate.Compare(*b.DueDate)
}
