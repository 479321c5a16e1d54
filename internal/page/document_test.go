package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raioenergia/raio-frontend/internal/theme"
	"github.com/raioenergia/raio-frontend/internal/ui"
)

func renderDocument(t *testing.T, d Document) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, d.Render(&b))
	return b.String()
}

func TestDocument_Defaults(t *testing.T) {
	root, err := ui.Root(theme.Default())
	require.NoError(t, err)

	html := renderDocument(t, Document{Body: root})

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>Raio Energia</title>")
	assert.Contains(t, html, `<meta name="viewport" content="width=device-width, initial-scale=1.0" />`)
	assert.Contains(t, html, `<meta charset="UTF-8" />`)
	assert.Contains(t, html, `<html lang="en">`)
	assert.Contains(t, html, `<div id="root"><style data-raio-styles="true">`)
	assert.Contains(t, html, "<div>Raio Energia - Frontend</div>")
	assert.NotContains(t, html, "<script>")
}

func TestDocument_Overrides(t *testing.T) {
	html := renderDocument(t, Document{
		Title:    "Painel <Raio>",
		Lang:     "pt-BR",
		Viewport: "width=device-width",
		MountID:  "app",
		Body:     ui.Text("x"),
	})

	assert.Contains(t, html, "<title>Painel &lt;Raio&gt;</title>")
	assert.Contains(t, html, `<html lang="pt-BR">`)
	assert.Contains(t, html, `content="width=device-width"`)
	assert.Contains(t, html, `<div id="app">x</div>`)
}

func TestDocument_DevReload(t *testing.T) {
	html := renderDocument(t, Document{Body: ui.Text("x"), DevReload: true})
	assert.Contains(t, html, "<script>")
	assert.Contains(t, html, EventsPath)
	assert.Contains(t, html, `addEventListener("reload"`)
}

func TestDocument_NoBody(t *testing.T) {
	var b strings.Builder
	assert.ErrorIs(t, Document{}.Render(&b), ErrNoBody)
	assert.Empty(t, b.String())
}

func TestDocument_BodyError(t *testing.T) {
	var b strings.Builder
	err := Document{Body: ui.El("bad tag", nil)}.Render(&b)
	assert.Error(t, err)
	assert.Empty(t, b.String(), "nothing is written on failure")
}
