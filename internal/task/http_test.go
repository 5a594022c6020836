package task

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpad/internal/model"
)

func newTestHandler() (*Handler, *Registry) {
	reg := NewRegistry()
	h := NewHandler(reg)
	return h, reg
}

func postJSON(t *testing.T, h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

type createResponse struct {
	Task     model.Task `json:"task"`
	Warnings []Problem  `json:"warnings"`
}

func TestTasksRoot_Create(t *testing.T) {
	h, reg := newTestHandler()

	rec := postJSON(t, h.TasksRoot, "/api/tasks",
		`{"title":"Buy milk","description":"2%","dueDate":"2024-01-01"}`)

	require.Equal(t, 201, rec.Code)

	var out createResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Task.ID)
	assert.Equal(t, "Buy milk", out.Task.Title)
	assert.Equal(t, "2%", out.Task.Description)
	require.NotNil(t, out.Task.DueDate)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), out.Task.DueDate.UTC())
	assert.Empty(t, out.Warnings)

	assert.Equal(t, 1, reg.Len())
}

func TestTasksRoot_CreateEmptyDraftWarnsButSucceeds(t *testing.T) {
	h, reg := newTestHandler()

	rec := postJSON(t, h.TasksRoot, "/api/tasks", `{}`)

	require.Equal(t, 201, rec.Code)

	var out createResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Task.ID)
	assert.Len(t, out.Warnings, 3)
	assert.Equal(t, 1, reg.Len())
}

func TestTasksRoot_CreateBadJSON(t *testing.T) {
	h, _ := newTestHandler()

	rec := postJSON(t, h.TasksRoot, "/api/tasks", `{"title":`)

	assert.Equal(t, 400, rec.Code)
}

func TestTasksRoot_CreateBadDueDate(t *testing.T) {
	h, reg := newTestHandler()

	rec := postJSON(t, h.TasksRoot, "/api/tasks", `{"dueDate":"tomorrow"}`)

	assert.Equal(t, 400, rec.Code)
	assert.Zero(t, reg.Len())
}

func TestTasksRoot_ListSorted(t *testing.T) {
	h, reg := newTestHandler()
	reg.Add(New(model.Draft{Title: "b"}))
	reg.Add(New(model.Draft{Title: "a"}))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?sort=title", nil)
	rec := httptest.NewRecorder()
	h.TasksRoot(rec, req)

	require.Equal(t, 200, rec.Code)

	var tasks []model.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].Title)
	assert.Equal(t, "b", tasks[1].Title)
}

func TestTasksRoot_ListUnknownSortKey(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?sort=priority", nil)
	rec := httptest.NewRecorder()
	h.TasksRoot(rec, req)

	assert.Equal(t, 400, rec.Code)
}

func TestTasksRoot_DefaultSortFromConfig(t *testing.T) {
	h, reg := newTestHandler()
	h.SetDefaultSort(SortByTitle)
	reg.Add(New(model.Draft{Title: "z"}))
	reg.Add(New(model.Draft{Title: "a"}))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec := httptest.NewRecorder()
	h.TasksRoot(rec, req)

	var tasks []model.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	assert.Equal(t, "a", tasks[0].Title)
}

func TestTasksSub_GetAndDelete(t *testing.T) {
	h, reg := newTestHandler()
	added := New(model.Draft{Title: "find me"})
	reg.Add(added)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/"+string(added.ID), nil)
	rec := httptest.NewRecorder()
	h.TasksSub(rec, req)

	require.Equal(t, 200, rec.Code)

	var got model.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, added.ID, got.ID)

	req = httptest.NewRequest(http.MethodDelete, "/api/tasks/"+string(added.ID), nil)
	rec = httptest.NewRecorder()
	h.TasksSub(rec, req)

	assert.Equal(t, 204, rec.Code)
	assert.Zero(t, reg.Len())
}

func TestTasksSub_GetUnknownIs404(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/nope", nil)
	rec := httptest.NewRecorder()
	h.TasksSub(rec, req)

	assert.Equal(t, 404, rec.Code)
}

func TestTasksSub_DeleteAbsentIs204(t *testing.T) {
	h, reg := newTestHandler()
	reg.Add(New(model.Draft{Title: "survivor"}))

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/nope", nil)
	rec := httptest.NewRecorder()
	h.TasksSub(rec, req)

	assert.Equal(t, 204, rec.Code)
	assert.Equal(t, 1, reg.Len())
}

func TestTasksStats(t *testing.T) {
	h, reg := newTestHandler()
	h.SetClock(NewFakeClock(time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)))

	due := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	reg.Add(New(model.Draft{Title: "due today", DueDate: &due}))
	reg.Add(New(model.Draft{Title: "unscheduled"}))

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/stats", nil)
	rec := httptest.NewRecorder()
	h.TasksStats(rec, req)

	require.Equal(t, 200, rec.Code)

	var s Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.DueToday)
	assert.Equal(t, 1, s.Unscheduled)
}

func TestTasksRoot_MethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPut, "/api/tasks", nil)
	rec := httptest.NewRecorder()
	h.TasksRoot(rec, req)

	assert.Equal(t, 405, rec.Code)
}
