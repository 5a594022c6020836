package model

import "time"

type TaskID string

// Task is one to-do item. The ID is minted at construction and never
// reassigned; every other field is optional and may stay unset. Once a
// task has been handed to the registry it is never mutated — callers
// holding a copy only read it.
type Task struct {
	ID          TaskID     `json:"id"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Draft holds the raw field values collected from the form before a
// task is built. A zero Draft is valid: building it yields a task with
// nothing but an ID.
type Draft struct {
	Title       string
	Description string
	DueDate     *time.Time
}
