package page

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raioenergia/raio-frontend/internal/theme"
)

func newTestHandler(t *testing.T, dev bool) *Handler {
	t.Helper()
	loader := theme.NewLoader("", nil)
	_, err := loader.Load(theme.DefaultThemeName)
	require.NoError(t, err)
	return NewHandler(loader, Options{Dev: dev})
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Index(t *testing.T) {
	h := newTestHandler(t, false)

	for _, path := range []string{"/", "/index.html"} {
		t.Run(path, func(t *testing.T) {
			rec := get(h, path)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			body := rec.Body.String()
			assert.Contains(t, body, "<title>Raio Energia</title>")
			assert.Contains(t, body, "Raio Energia - Frontend")
			assert.Contains(t, body, "--raio-color-raioGreen-5: #00FF88;")
			assert.NotContains(t, body, EventsPath)
		})
	}
}

func TestHandler_ThemeCSS(t *testing.T) {
	h := newTestHandler(t, false)
	rec := get(h, "/theme.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, theme.Default().CSS(), rec.Body.String())
}

func TestHandler_ThemeJSON(t *testing.T) {
	h := newTestHandler(t, false)
	rec := get(h, "/api/theme")
	require.Equal(t, http.StatusOK, rec.Code)

	var spec theme.Spec
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &spec))
	assert.Equal(t, theme.DefaultSpec(), spec)
}

func TestHandler_Health(t *testing.T) {
	h := newTestHandler(t, false)
	rec := get(h, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandler_NoThemeLoaded(t *testing.T) {
	h := NewHandler(theme.NewLoader("", nil), Options{})

	for _, path := range []string{"/", "/theme.css", "/api/theme", "/healthz"} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, http.StatusServiceUnavailable, get(h, path).Code)
		})
	}
}

func TestHandler_NotFound(t *testing.T) {
	h := newTestHandler(t, false)
	assert.Equal(t, http.StatusNotFound, get(h, "/missing").Code)
	assert.Equal(t, http.StatusNotFound, get(h, EventsPath).Code, "reload stream is dev only")
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, false)
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandler_DevMode(t *testing.T) {
	h := newTestHandler(t, true)
	require.NotNil(t, h.Reload())

	rec := get(h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), EventsPath)
}

func TestHandler_FollowsLoader(t *testing.T) {
	loader := theme.NewLoader("", nil)
	_, err := loader.Load("raio")
	require.NoError(t, err)
	h := NewHandler(loader, Options{})

	assert.Contains(t, get(h, "/").Body.String(), `data-raio-primary-color="raioGreen"`)

	_, err = loader.Load("raio-contrast")
	require.NoError(t, err)
	assert.Contains(t, get(h, "/").Body.String(), `data-raio-primary-color="raioDark"`)
}
