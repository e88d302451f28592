package template

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	gotemplate "github.com/goliatone/go-template"
)

// Extension is appended to template names that lack it.
const Extension = ".tpl"

type renderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
}

// Engine renders named templates from an fs.FS.
type Engine struct {
	renderer renderer
}

// New loads templates from files.
func New(files fs.FS) (*Engine, error) {
	if files == nil {
		return nil, errors.New("template: templates fs is required")
	}
	r, err := gotemplate.NewRenderer(
		gotemplate.WithFS(files),
		gotemplate.WithExtension(Extension),
	)
	if err != nil {
		return nil, fmt.Errorf("template: new renderer: %w", err)
	}
	return &Engine{renderer: r}, nil
}

// Render executes the named template with data.
func (e *Engine) Render(name string, data map[string]any) ([]byte, error) {
	if e == nil || e.renderer == nil {
		return nil, errors.New("template: engine is nil")
	}
	out, err := e.renderer.RenderTemplate(name, data)
	if err != nil {
		return nil, fmt.Errorf("template: render %q: %w", name, err)
	}
	return []byte(out), nil
}
