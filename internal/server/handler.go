package server

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"taskpad/internal/config"
	"taskpad/internal/httpmw"
	staticfiles "taskpad/static"
)

// NewHandler assembles the full HTTP surface: static UI, health and
// metrics endpoints, admin page and the JSON API, wrapped in the
// middleware chain.
func NewHandler(app *App, logger *logrus.Logger) http.Handler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	mux := http.NewServeMux()
	rr := &RouteRegistry{}

	RegisterStatic(mux, app.Config)
	RegisterAdminUI(mux, rr)
	RegisterAPIRoutes(mux, rr, app)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "taskpad",
			"tasks":   app.Registry.Len(),
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.Handle("GET /metrics", httpmw.MetricsHandler())

	return httpmw.Chain(mux,
		httpmw.WithRequestID,
		httpmw.WithAccessLog(logger),
		httpmw.WithMetrics,
		httpmw.WithRecover(logger),
	)
}

// RegisterStatic serves the single-page UI. Embedded assets by
// default; TASKPAD_DISK_STATIC switches to the working tree for
// development.
func RegisterStatic(mux *http.ServeMux, cfg *config.Config) {
	staticHandler := http.FileServer(http.FS(staticfiles.EmbeddedFS()))
	if cfg.Server.DiskStatic {
		staticHandler = http.FileServer(http.Dir(cfg.Server.StaticDir))
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", staticHandler))

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		if cfg.Server.DiskStatic {
			http.ServeFile(w, r, filepath.Join(cfg.Server.StaticDir, "index.html"))
			return
		}
		http.ServeFileFS(w, r, staticfiles.EmbeddedFS(), "index.html")
	})
}
