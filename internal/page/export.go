package page

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/raioenergia/raio-frontend/internal/theme"
)

// ManifestFile is the name of the build manifest in the output directory.
const ManifestFile = "manifest.json"

// BuiltFile is one file written by Export.
type BuiltFile struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// Manifest describes a static build.
type Manifest struct {
	BuildID string      `json:"build_id"`
	BuiltAt time.Time   `json:"built_at"`
	Theme   string      `json:"theme"`
	Files   []BuiltFile `json:"files"`
}

// BuildReport summarises an export.
type BuildReport struct {
	OutDir   string
	Manifest Manifest
}

// TotalSize returns the combined size of the built files.
func (r *BuildReport) TotalSize() int64 {
	var total int64
	for _, f := range r.Manifest.Files {
		total += f.Size
	}
	return total
}

// Export renders the document for t into outDir as index.html, writes the
// theme stylesheet as theme.css and records both in manifest.json.
// The reload client is never included.
func Export(outDir string, t *theme.Theme, opts Options) (*BuildReport, error) {
	if t == nil {
		return nil, fmt.Errorf("export: %w", theme.ErrThemeNotFound)
	}

	opts.Dev = false
	h := NewHandler(staticSource{t}, opts)
	doc, err := h.Document(t)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	var index bytes.Buffer
	if err := doc.Render(&index); err != nil {
		return nil, fmt.Errorf("export: rendering index.html: %w", err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	outputs := []struct {
		name string
		data []byte
	}{
		{"index.html", index.Bytes()},
		{"theme.css", []byte(t.CSS())},
	}

	manifest := Manifest{
		BuildID: ulid.Make().String(),
		BuiltAt: time.Now().UTC(),
		Theme:   t.Name(),
	}

	for _, out := range outputs {
		if err := os.WriteFile(filepath.Join(outDir, out.name), out.data, 0644); err != nil {
			return nil, fmt.Errorf("export: writing %s: %w", out.name, err)
		}
		manifest.Files = append(manifest.Files, BuiltFile{Path: out.name, Size: int64(len(out.data))})
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, ManifestFile), append(data, '\n'), 0644); err != nil {
		return nil, fmt.Errorf("export: writing %s: %w", ManifestFile, err)
	}

	return &BuildReport{OutDir: outDir, Manifest: manifest}, nil
}

// staticSource is a ThemeSource that always returns the same theme.
type staticSource struct {
	theme *theme.Theme
}

func (s staticSource) Current() *theme.Theme {
	return s.theme
}
