package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mgutz/ansi"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/render"
	"github.com/goliatone/go-regform/pkg/strength"
)

const barWidth = 10

var severityStyles = map[strength.Severity]string{
	strength.SeverityDanger:  "red",
	strength.SeverityWarning: "yellow",
	strength.SeverityInfo:    "cyan",
	strength.SeverityPrimary: "blue",
	strength.SeveritySuccess: "green",
}

var bannerStyles = map[render.BannerKind]string{
	render.BannerSuccess: "green+b",
	render.BannerError:   "red+b",
	render.BannerInfo:    "cyan+b",
}

// Presenter writes form feedback to a terminal.
type Presenter struct {
	mu    sync.Mutex
	out   io.Writer
	color bool
}

var _ render.Presenter = (*Presenter)(nil)

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithColor toggles ANSI styling. It is on by default.
func WithColor(enabled bool) PresenterOption {
	return func(p *Presenter) {
		p.color = enabled
	}
}

// NewPresenter writes to out.
func NewPresenter(out io.Writer, options ...PresenterOption) *Presenter {
	p := &Presenter{out: out, color: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p
}

func (p *Presenter) paint(s, style string) string {
	if !p.color || style == "" {
		return s
	}
	return ansi.Color(s, style)
}

func (p *Presenter) println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, line)
}

func (p *Presenter) SetValue(field model.FieldName, value string) {
	if value == "" {
		return
	}
	p.println(p.paint("  "+field.Label()+" → "+value, "black+h"))
}

func (p *Presenter) SetFieldStatus(field model.FieldName, status model.Status) {
	switch status {
	case model.StatusValid:
		p.println(p.paint("  ✓ "+field.Label(), "green"))
	case model.StatusInvalid:
		p.println(p.paint("  ✗ "+field.Label()+": "+Hint(field), "red"))
	}
}

func (p *Presenter) SetTermsStatus(status model.Status) {
	if status == model.StatusInvalid {
		p.println(p.paint("  ✗ "+Hint(model.FieldTerms), "red"))
	}
}

func (p *Presenter) ShowStrength(a strength.Assessment) {
	p.println(p.strengthLines(a))
}

func (p *Presenter) strengthLines(a strength.Assessment) string {
	band := a.Band()
	filled := a.Score * barWidth / strength.MaxScore
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	var b strings.Builder
	fmt.Fprintf(&b, "  %s %3d%% %s", p.paint(bar, severityStyles[band.Severity]), a.Score, band.Label)
	for _, c := range strength.Criteria {
		mark, style := "✗", "red"
		if a.Met(c) {
			mark, style = "✓", "green"
		}
		fmt.Fprintf(&b, "\n    %s %s", p.paint(mark, style), c.Description())
	}
	return b.String()
}

func (p *Presenter) ResetStrength() {
	p.println(p.paint("  "+strength.IdleLabel+": "+strings.Repeat("░", barWidth), "black+h"))
}

func (p *Presenter) SetBusy(busy bool) {
	if busy {
		p.println(p.paint("Sending...", "yellow"))
	}
}

func (p *Presenter) ShowBanner(b render.Banner) {
	p.println(p.paint(b.Text(), bannerStyles[b.Kind]))
}
