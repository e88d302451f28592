package submit

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/render"
	"github.com/goliatone/go-regform/pkg/render/template"
)

//go:embed templates/*.tpl
var pageTemplates embed.FS

const pageTemplate = "fallback_page"

// Opener hands a rendered fallback page to whatever shows it: a file for a
// browser, a response writer, a test buffer.
type Opener func(ctx context.Context, name string, page []byte) error

// FileOpener writes pages into dir and logs the resulting path.
func FileOpener(dir string, logger *zap.Logger) Opener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(_ context.Context, name string, page []byte) error {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("submit: page dir: %w", err)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, page, 0o600); err != nil {
			return fmt.Errorf("submit: write page: %w", err)
		}
		logger.Info("fallback page written", zap.String("path", path))
		return nil
	}
}

// Page renders a hidden, self-submitting form aimed at a new browsing
// context and passes it to an Opener.
type Page struct {
	endpoint string
	engine   *template.Engine
	opener   Opener
	settings settings
}

var _ Fallback = (*Page)(nil)

// NewPage builds a page fallback for endpoint.
func NewPage(endpoint string, opener Opener, options ...Option) (*Page, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, ErrNoEndpoint
	}
	if opener == nil {
		return nil, errors.New("submit: page opener is required")
	}
	files, err := fs.Sub(pageTemplates, "templates")
	if err != nil {
		return nil, fmt.Errorf("submit: page templates: %w", err)
	}
	engine, err := template.New(files)
	if err != nil {
		return nil, fmt.Errorf("submit: page engine: %w", err)
	}
	return &Page{
		endpoint: endpoint,
		engine:   engine,
		opener:   opener,
		settings: newSettings(options),
	}, nil
}

// Render returns the page markup for p.
func (pg *Page) Render(p model.Payload) ([]byte, error) {
	banner := render.Banner{
		Kind:    render.BannerInfo,
		Title:   "Submitting...",
		Message: "Your registration is being sent in a new tab.",
	}
	hidden := render.PayloadHiddenFields(p, pg.settings.subject)
	fields := make([]map[string]any, 0, len(hidden))
	for _, f := range hidden {
		fields = append(fields, map[string]any{"name": f.Name, "value": f.Value})
	}
	out, err := pg.engine.Render(pageTemplate, map[string]any{
		"title":   pg.settings.subject,
		"banner":  render.BannerHTML(banner),
		"form_id": "regform-" + p.ID().String(),
		"action":  pg.endpoint,
		"target":  "_blank",
		"fields":  fields,
	})
	if err != nil {
		return nil, fmt.Errorf("submit: render page: %w", err)
	}
	return out, nil
}

// Submit renders the page and opens it.
func (pg *Page) Submit(ctx context.Context, p model.Payload) error {
	page, err := pg.Render(p)
	if err != nil {
		return err
	}
	return pg.opener(ctx, "regform-"+p.ID().String()+".html", page)
}
