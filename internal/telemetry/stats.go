package telemetry

import "time"

type Stats struct {
	Period       string            `json:"period"`
	Days         int               `json:"days"`
	EventCounts  map[EventType]int `json:"event_counts"`
	TasksCreated int               `json:"tasks_created"`
	TasksRemoved int               `json:"tasks_removed"`
	TasksPerDay  float64           `json:"tasks_per_day"`
}

// CalculateStats computes usage stats from events recorded since the
// given instant. days is the window length used for the per-day rate;
// anything below one day counts as one.
func CalculateStats(events []Event, since time.Time, days int) Stats {
	if days < 1 {
		days = 1
	}

	stats := Stats{
		Period:      since.Format("2006-01-02"),
		Days:        days,
		EventCounts: make(map[EventType]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		switch event.Type {
		case EventTaskCreated:
			stats.TasksCreated++
		case EventTaskRemoved:
			stats.TasksRemoved++
		}
	}

	stats.TasksPerDay = float64(stats.TasksCreated) / float64(days)

	return stats
}
