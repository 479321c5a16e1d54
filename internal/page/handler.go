package page

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/raioenergia/raio-frontend/internal/theme"
	"github.com/raioenergia/raio-frontend/internal/ui"
)

// ThemeSource supplies the theme to render with. *theme.Loader satisfies it.
type ThemeSource interface {
	Current() *theme.Theme
}

// Options configures the document served by Handler.
type Options struct {
	Title    string
	Lang     string
	Viewport string
	MountID  string
	Dev      bool // Enables the reload stream and disables caching
	Logger   *slog.Logger
}

// Handler serves the front-end document and its theme.
type Handler struct {
	themes ThemeSource
	opts   Options
	logger *slog.Logger
	reload *Reload
	mux    *http.ServeMux
}

// NewHandler creates a Handler that renders with whatever theme themes
// currently holds.
func NewHandler(themes ThemeSource, opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := &Handler{
		themes: themes,
		opts:   opts,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	if opts.Dev {
		h.reload = NewReload()
	}
	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.mux.HandleFunc("GET /{$}", h.handleIndex)
	h.mux.HandleFunc("GET /index.html", h.handleIndex)
	h.mux.HandleFunc("GET /theme.css", h.handleThemeCSS)
	h.mux.HandleFunc("GET /api/theme", h.handleThemeJSON)
	h.mux.HandleFunc("GET /healthz", h.handleHealth)
	if h.reload != nil {
		h.mux.Handle("GET "+EventsPath, h.reload)
	}
}

// Reload returns the dev reload hub, or nil outside dev mode.
func (h *Handler) Reload() *Reload {
	return h.reload
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	h.mux.ServeHTTP(rec, r)
	h.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", time.Since(start))
}

// Document builds the document for t with the handler's options.
func (h *Handler) Document(t *theme.Theme) (Document, error) {
	root, err := ui.Root(t)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Title:     h.opts.Title,
		Lang:      h.opts.Lang,
		Viewport:  h.opts.Viewport,
		MountID:   h.opts.MountID,
		Body:      root,
		DevReload: h.opts.Dev,
	}, nil
}

func (h *Handler) currentTheme(w http.ResponseWriter) *theme.Theme {
	t := h.themes.Current()
	if t == nil {
		http.Error(w, "theme not loaded", http.StatusServiceUnavailable)
	}
	return t
}

func (h *Handler) setCaching(w http.ResponseWriter) {
	if h.opts.Dev {
		w.Header().Set("Cache-Control", "no-cache")
	}
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	t := h.currentTheme(w)
	if t == nil {
		return
	}

	doc, err := h.Document(t)
	if err != nil {
		h.logger.Error("building document failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		h.logger.Error("rendering document failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	h.setCaching(w)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) handleThemeCSS(w http.ResponseWriter, r *http.Request) {
	t := h.currentTheme(w)
	if t == nil {
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	h.setCaching(w)
	_, _ = w.Write([]byte(t.CSS()))
}

func (h *Handler) handleThemeJSON(w http.ResponseWriter, r *http.Request) {
	t := h.currentTheme(w)
	if t == nil {
		return
	}
	writeJSON(w, http.StatusOK, t.Spec())
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if h.themes.Current() == nil {
		status = "theme not loaded"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]string{"status": status})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Flush lets the reload stream flush through the recorder.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
