package task

import (
	"sync"

	"taskpad/internal/model"
)

// Registry owns the authoritative task collection, insertion-ordered.
// Construct one at the composition root and pass it down; there is no
// package-level instance. HTTP handlers reach it concurrently, so a
// single mutex guards the slice.
type Registry struct {
	mu    sync.RWMutex
	tasks []model.Task
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends t to the end of the collection. IDs are not checked for
// duplicates; two tasks with identical content are allowed.
func (r *Registry) Add(t model.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, t)
}

// Remove drops the first task whose ID matches. Removing an absent ID
// is a no-op, not an error.
func (r *Registry) Remove(id model.TaskID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return
		}
	}
}

func (r *Registry) Get(id model.TaskID) (model.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// List returns a snapshot in insertion order. The returned slice never
// aliases internal storage.
func (r *Registry) List() []model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks)
}
