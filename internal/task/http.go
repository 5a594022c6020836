package task

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"taskpad/internal/model"
	"taskpad/internal/telemetry"
)

// Handler serves the /api/tasks endpoints against one registry.
type Handler struct {
	reg         *Registry
	clock       Clock
	events      telemetry.Repository
	defaultSort SortKey
}

func NewHandler(reg *Registry) *Handler {
	return &Handler{reg: reg, clock: RealClock{}}
}

func (h *Handler) SetClock(c Clock) {
	if c != nil {
		h.clock = c
	}
}

func (h *Handler) SetEvents(repo telemetry.Repository) {
	h.events = repo
}

func (h *Handler) SetDefaultSort(key SortKey) {
	h.defaultSort = key
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func (h *Handler) record(eventType telemetry.EventType, metadata telemetry.EventMetadata) {
	if h.events == nil {
		return
	}
	_ = h.events.RecordEvent(eventType, metadata)
}

// parseDueDate accepts RFC 3339 or a bare calendar date, which is what
// the form's date input submits.
func parseDueDate(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, true
	}
	return nil, false
}

// TaskUpsert is the POST /api/tasks request body. All fields are
// optional; the due date travels as a string.
type TaskUpsert struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

// TasksRoot handles /api/tasks (collection).
func (h *Handler) TasksRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		key := h.defaultSort
		if q := r.URL.Query().Get("sort"); q != "" {
			parsed, ok := ParseSortKey(q)
			if !ok {
				writeErr(w, 400, "unknown sort key: "+q)
				return
			}
			key = parsed
		}

		tasks := h.reg.List()
		if key != "" {
			tasks = Sorted(tasks, key)
		}

		h.record(telemetry.EventListViewed, telemetry.EventMetadata{"count": len(tasks)})
		writeJSON(w, 200, tasks)
		return

	case http.MethodPost:
		var in TaskUpsert
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}

		due, ok := parseDueDate(in.DueDate)
		if !ok {
			writeErr(w, 400, "bad dueDate: want RFC 3339 or YYYY-MM-DD")
			return
		}

		draft := model.Draft{
			Title:       in.Title,
			Description: in.Description,
			DueDate:     due,
		}

		// Missing fields are reported, never rejected.
		warnings := Validate(draft)

		t := New(draft)
		h.reg.Add(t)

		h.record(telemetry.EventTaskCreated, telemetry.EventMetadata{"id": string(t.ID)})
		telemetry.ObserveTaskCreated(h.reg.Len())

		writeJSON(w, 201, map[string]any{
			"task":     t,
			"warnings": warnings,
		})
		return

	default:
		writeErr(w, 405, "method not allowed")
		return
	}
}

// TasksSub handles /api/tasks/{id}.
func (h *Handler) TasksSub(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/tasks/"), "/")
	if id == "" || strings.Contains(id, "/") {
		writeErr(w, 404, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		t, ok := h.reg.Get(model.TaskID(id))
		if !ok {
			writeErr(w, 404, "not found")
			return
		}
		writeJSON(w, 200, t)
		return

	case http.MethodDelete:
		h.reg.Remove(model.TaskID(id))
		h.record(telemetry.EventTaskRemoved, telemetry.EventMetadata{"id": id})
		telemetry.ObserveTaskRemoved(h.reg.Len())
		w.WriteHeader(204)
		return

	default:
		writeErr(w, 405, "method not allowed")
		return
	}
}

// TasksStats handles GET /api/tasks/stats.
func (h *Handler) TasksStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, 405, "method not allowed")
		return
	}
	writeJSON(w, 200, ComputeStats(h.reg.List(), h.clock.Now()))
}
