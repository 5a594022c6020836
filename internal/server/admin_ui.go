package server

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/admin.html
var adminTemplatesFS embed.FS

var adminTmpl = template.Must(
	template.New("admin.html").ParseFS(adminTemplatesFS, "templates/admin.html"),
)

type adminPageData struct {
	Routes []RouteDoc
}

// RegisterAdminUI exposes the route list, as JSON for tooling and as a
// small HTML page.
func RegisterAdminUI(mux *http.ServeMux, rr *RouteRegistry) {
	mux.HandleFunc("GET /_/admin/routes.json", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, rr.List())
	})

	mux.HandleFunc("GET /_/admin", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		data := adminPageData{Routes: rr.List()}
		if err := adminTmpl.Execute(w, data); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
	})
}
