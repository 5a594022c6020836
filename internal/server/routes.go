package server

import (
	"net/http"
	"strings"
)

// RouteDoc describes one registered route for the admin page.
type RouteDoc struct {
	Method      string `json:"method"`
	Pattern     string `json:"pattern"`
	Summary     string `json:"summary,omitempty"`
	ExampleBody string `json:"example_body,omitempty"`
}

// RouteRegistry collects docs for every route registered through it.
type RouteRegistry struct {
	routes []RouteDoc
}

func (rr *RouteRegistry) List() []RouteDoc {
	out := make([]RouteDoc, len(rr.routes))
	copy(out, rr.routes)
	return out
}

// Handle registers h on the mux under a "METHOD /pattern" string and
// records the route doc alongside.
func (rr *RouteRegistry) Handle(mux *http.ServeMux, methodAndPattern, summary, exampleBody string, h http.HandlerFunc) {
	method, pattern, _ := strings.Cut(methodAndPattern, " ")
	rr.routes = append(rr.routes, RouteDoc{
		Method:      method,
		Pattern:     pattern,
		Summary:     summary,
		ExampleBody: exampleBody,
	})
	mux.HandleFunc(methodAndPattern, h)
}
