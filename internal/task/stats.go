package task

import (
	"time"

	"taskpad/internal/model"
)

// Stats summarizes a registry snapshot for the list view header.
type Stats struct {
	Total       int `json:"total"`
	DueToday    int `json:"due_today"`
	Overdue     int `json:"overdue"`
	Unscheduled int `json:"unscheduled"`
}

// ComputeStats buckets tasks by how their due date relates to the day
// containing now, in now's location. Tasks without a due date count as
// unscheduled.
func ComputeStats(tasks []model.Task, now time.Time) Stats {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.AddDate(0, 0, 1)

	var s Stats
	for _, t := range tasks {
		s.Total++
		switch {
		case t.DueDate == nil:
			s.Unscheduled++
		case t.DueDate.Before(startOfDay):
			s.Overdue++
		case t.DueDate.Before(endOfDay):
			s.DueToday++
		}
	}
	return s
}
