// Package page serves and exports the HTML document the root component is
// mounted into.
package page

import (
	"bytes"
	"errors"
	"html/template"
	"io"

	"github.com/raioenergia/raio-frontend/internal/ui"
)

// Document defaults.
const (
	DefaultTitle    = "Raio Energia"
	DefaultLang     = "en"
	DefaultViewport = "width=device-width, initial-scale=1.0"
	DefaultMountID  = "root"
)

// ErrNoBody is returned when a document has nothing to mount.
var ErrNoBody = errors.New("page: document has no body")

// Document is the HTML shell around a rendered component tree.
type Document struct {
	Title     string
	Lang      string
	Viewport  string
	MountID   string
	Body      ui.Node
	DevReload bool // Inject the live-reload client
}

const documentTemplate = `<!doctype html>
<html lang="{{.Lang}}">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="{{.Viewport}}" />
    <title>{{.Title}}</title>
  </head>
  <body>
    <div id="{{.MountID}}">{{.Body}}</div>
{{- if .ReloadScript}}
    <script>{{.ReloadScript}}</script>
{{- end}}
  </body>
</html>
`

var documentTemplateParsed = template.Must(template.New("document").Parse(documentTemplate))

const reloadScript = `(function () {
  var source = new EventSource("` + EventsPath + `");
  source.addEventListener("reload", function () { window.location.reload(); });
})();`

// Render writes the complete HTML document.
func (d Document) Render(w io.Writer) error {
	if d.Body == nil {
		return ErrNoBody
	}

	body, err := ui.RenderString(d.Body)
	if err != nil {
		return err
	}

	data := map[string]any{
		"Title":    orDefault(d.Title, DefaultTitle),
		"Lang":     orDefault(d.Lang, DefaultLang),
		"Viewport": orDefault(d.Viewport, DefaultViewport),
		"MountID":  orDefault(d.MountID, DefaultMountID),
		"Body":     template.HTML(body),
	}
	if d.DevReload {
		data["ReloadScript"] = template.JS(reloadScript)
	}

	var buf bytes.Buffer
	if err := documentTemplateParsed.Execute(&buf, data); err != nil {
		return err
	}
	_, err = buf.WriteTo(w)
	return err
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
