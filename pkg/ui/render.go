package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/propconv/pkg/errors"
)

// HandlerRow describes one registered handler.
type HandlerRow struct {
	Type    string `json:"type" yaml:"type" toml:"type"`
	Handler string `json:"handler" yaml:"handler" toml:"handler"`
	Source  string `json:"source" yaml:"source" toml:"source"`
}

// RejectionRow describes a handler dropped as a duplicate during discovery.
type RejectionRow struct {
	Type             string `json:"type" yaml:"type" toml:"type"`
	Rejected         string `json:"rejected" yaml:"rejected" toml:"rejected"`
	RejectedSource   string `json:"rejectedSource" yaml:"rejectedSource" toml:"rejectedSource"`
	Registered       string `json:"registered" yaml:"registered" toml:"registered"`
	RegisteredSource string `json:"registeredSource" yaml:"registeredSource" toml:"registeredSource"`
}

// HandlersReport is the result of the handlers command.
type HandlersReport struct {
	Handlers   []HandlerRow   `json:"handlers" yaml:"handlers" toml:"handlers"`
	Rejections []RejectionRow `json:"rejections,omitempty" yaml:"rejections,omitempty" toml:"rejections,omitempty"`
}

// ConversionReport is the result of the convert command.
type ConversionReport struct {
	Type  string `json:"type" yaml:"type" toml:"type"`
	Input string `json:"input" yaml:"input" toml:"input"`
	Value any    `json:"value" yaml:"value" toml:"value,omitempty"`
}

// Renderer writes reports in one output format.
type Renderer struct {
	w      io.Writer
	format Format
	styles Styles
}

// NewRenderer creates a renderer for w. FormatAuto is resolved against w.
func NewRenderer(w io.Writer, format Format) *Renderer {
	format = format.Resolve(w)
	styles := PlainStyles()
	if format == FormatTerminal {
		styles = TerminalStyles()
	}
	return &Renderer{w: w, format: format, styles: styles}
}

// Format returns the resolved output format.
func (r *Renderer) Format() Format {
	return r.format
}

// Handlers renders the handler listing.
func (r *Renderer) Handlers(rep HandlersReport) error {
	if r.structured() {
		return r.encode(rep)
	}

	var b strings.Builder
	fmt.Fprintln(&b, r.styles.Header.Render(fmt.Sprintf("Registered handlers (%d)", len(rep.Handlers))))

	width := 0
	for _, row := range rep.Handlers {
		width = max(width, len(row.Type))
	}
	for _, row := range rep.Handlers {
		fmt.Fprintf(&b, "  %s  %s %s\n",
			r.styles.Type.Render(pad(row.Type, width)),
			row.Handler,
			r.styles.Source.Render("("+row.Source+")"))
	}

	if len(rep.Rejections) > 0 {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, r.styles.Header.Render(fmt.Sprintf("Rejected duplicates (%d)", len(rep.Rejections))))
		for _, rej := range rep.Rejections {
			fmt.Fprintf(&b, "  %s  %s %s %s\n",
				r.styles.Type.Render(rej.Type),
				r.styles.Warn.Render(rej.Rejected),
				r.styles.Source.Render("("+rej.RejectedSource+")"),
				r.styles.Muted.Render("kept "+rej.Registered+" from "+rej.RegisteredSource))
		}
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Conversion renders a converted value. Text output prints the value only.
func (r *Renderer) Conversion(rep ConversionReport) error {
	if r.structured() {
		return r.encode(rep)
	}

	text := r.styles.Muted.Render("(empty)")
	if rep.Value != nil {
		text = r.styles.Value.Render(fmt.Sprint(rep.Value))
	}
	_, err := fmt.Fprintln(r.w, text)
	return err
}

func (r *Renderer) structured() bool {
	switch r.format {
	case FormatJSON, FormatYAML, FormatTOML:
		return true
	}
	return false
}

func (r *Renderer) encode(v any) error {
	var err error
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(r.w).Encode(v)
	default:
		return errors.Newf(errors.ErrInternal, "format %s is not a structured format", r.format)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to render %s output", r.format)
	}
	return nil
}

func pad(s string, width int) string {
	if n := width - len(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
