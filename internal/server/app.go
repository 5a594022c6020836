package server

import (
	"taskpad/internal/config"
	"taskpad/internal/task"
	"taskpad/internal/telemetry"
)

// App holds the in-memory state for the server. This makes it obvious
// what the handlers depend on.
type App struct {
	Config   *config.Config
	Registry *task.Registry
	Events   *telemetry.MemoryRepository
	Clock    task.Clock
}

func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	return &App{
		Config:   cfg,
		Registry: task.NewRegistry(),
		Events:   telemetry.NewMemoryRepository(),
		Clock:    task.RealClock{},
	}
}
