package task

import (
	"time"

	"github.com/google/uuid"

	"taskpad/internal/model"
)

// New builds a finalized task from a draft. Every call mints a fresh
// ID, so building the same draft twice yields two tasks with identical
// fields and distinct IDs.
func New(d model.Draft) model.Task {
	return model.Task{
		ID:          model.TaskID(uuid.NewString()),
		Title:       d.Title,
		Description: d.Description,
		DueDate:     d.DueDate,
		CreatedAt:   time.Now(),
	}
}
