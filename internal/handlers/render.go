package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/swissquality-storen/web/internal/format"
	"github.com/swissquality-storen/web/internal/platform/observability"
)

// Renderer parses and executes the page templates. Each page template is
// combined with the shared layout into its own template set. In dev mode
// templates are reparsed on every request.
type Renderer struct {
	dir     string
	devMode bool

	mu    sync.RWMutex
	pages map[string]*template.Template
}

// NewRenderer parses all templates under dir. Layout files live in
// dir/layout, page files directly in dir.
func NewRenderer(dir string, devMode bool) (*Renderer, error) {
	r := &Renderer{dir: dir, devMode: devMode}
	if !devMode {
		pages, err := parsePages(dir)
		if err != nil {
			return nil, err
		}
		r.pages = pages
	}
	return r, nil
}

var templateFuncs = template.FuncMap{
	"now":      time.Now,
	"phone":    format.Phone,
	"distance": format.Distance,
	"canton":   format.CantonAbbreviation,
	"truncate": format.Truncate,
}

func parsePages(dir string) (map[string]*template.Template, error) {
	var layouts, pageFiles []string
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".tmpl") {
			return nil
		}
		if filepath.Base(filepath.Dir(path)) == "layout" {
			layouts = append(layouts, path)
		} else {
			pageFiles = append(pageFiles, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(pageFiles) == 0 {
		return nil, fmt.Errorf("no page templates found under %s", dir)
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, file := range pageFiles {
		name := strings.TrimSuffix(filepath.Base(file), ".tmpl")
		files := append(append([]string{}, layouts...), file)
		t, err := template.New(name).Funcs(templateFuncs).ParseFiles(files...)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

// Render executes the named page template within the base layout.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, page string, data any) {
	t, err := r.lookup(page)
	if err != nil {
		observability.FromContext(req.Context()).Error("template lookup failed",
			zap.String("page", page), zap.Error(err))
		http.Error(w, "Interner Serverfehler", http.StatusInternalServerError)
		return
	}

	// Render to a buffer first so a template error never produces a half page.
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		observability.FromContext(req.Context()).Error("template execution failed",
			zap.String("page", page), zap.Error(err))
		http.Error(w, "Interner Serverfehler", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (r *Renderer) lookup(page string) (*template.Template, error) {
	if r.devMode {
		pages, err := parsePages(r.dir)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.pages = pages
		r.mu.Unlock()
	}
	r.mu.RLock()
	t := r.pages[page]
	r.mu.RUnlock()
	if t == nil {
		return nil, fmt.Errorf("unknown page template %q", page)
	}
	return t, nil
}
