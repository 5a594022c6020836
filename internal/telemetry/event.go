package telemetry

import "time"

type EventType string

const (
	EventTaskCreated EventType = "task_created"
	EventTaskRemoved EventType = "task_removed"
	EventListViewed  EventType = "list_viewed"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
