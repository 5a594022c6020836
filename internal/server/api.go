package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"taskpad/internal/task"
	"taskpad/internal/telemetry"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// RegisterAPIRoutes wires the task and telemetry endpoints.
func RegisterAPIRoutes(mux *http.ServeMux, rr *RouteRegistry, app *App) {
	h := task.NewHandler(app.Registry)
	h.SetClock(app.Clock)
	h.SetEvents(app.Events)
	if key, ok := task.ParseSortKey(app.Config.Tasks.DefaultSort); ok {
		h.SetDefaultSort(key)
	}

	rr.Handle(mux, "GET /api/tasks", "List tasks (?sort=title|due_date)", "", h.TasksRoot)
	rr.Handle(mux, "POST /api/tasks", "Create task",
		`{"title":"pay bills","description":"electric + water","dueDate":"2026-09-01"}`, h.TasksRoot)
	rr.Handle(mux, "GET /api/tasks/stats", "Due-date buckets for the list header", "", h.TasksStats)
	rr.Handle(mux, "GET /api/tasks/{id}", "Get one task", "", h.TasksSub)
	rr.Handle(mux, "DELETE /api/tasks/{id}", "Remove task (no-op when absent)", "", h.TasksSub)

	rr.Handle(mux, "GET /api/telemetry/stats", "Usage stats (?days=N)", "", app.telemetryStats)
}

func (app *App) telemetryStats(w http.ResponseWriter, r *http.Request) {
	days := 7
	if q := r.URL.Query().Get("days"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			days = n
		}
	}

	since := app.Clock.Now().AddDate(0, 0, -days)
	events, err := app.Events.GetEvents(since, nil)
	if err != nil {
		writeJSON(w, 500, map[string]any{"error": err.Error()})
		return
	}

	writeJSON(w, 200, telemetry.CalculateStats(events, since, days))
}
