package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"tooldeck/internal/logic"
	"tooldeck/internal/theme"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// Page headings
const (
	DefaultTitle    = "AI Tools Directory"
	DefaultSubtitle = "Discover the best AI tools for your needs"
)

// PageOptions describes the chrome around the listing
type PageOptions struct {
	Title      string
	Subtitle   string
	Mode       theme.Mode
	Palette    theme.Palette
	SearchTerm string
	Category   string
}

type pageData struct {
	Title         string
	Subtitle      string
	Theme         theme.Mode
	Palette       string
	Vars          template.CSS
	SearchTerm    string
	CategoryLabel string
	NoResultsText string
	NoResultsHint string
	Display       Display
}

// HTMLTarget renders a standalone page. Each Replace re-executes the whole
// template, so the page only ever holds the latest display.
type HTMLTarget struct {
	opts PageOptions
	page []byte
}

// NewHTMLTarget creates a target with the given chrome
func NewHTMLTarget(opts PageOptions) *HTMLTarget {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Subtitle == "" {
		opts.Subtitle = DefaultSubtitle
	}
	if opts.Palette.Key == "" {
		opts.Palette = theme.Resolve(theme.DefaultPalette)
	}
	if opts.Mode == "" {
		opts.Mode = theme.DefaultMode
	}
	return &HTMLTarget{opts: opts}
}

// Replace renders d as the whole page body
func (h *HTMLTarget) Replace(d Display) error {
	data := pageData{
		Title:         h.opts.Title,
		Subtitle:      h.opts.Subtitle,
		Theme:         h.opts.Mode,
		Palette:       h.opts.Palette.Key,
		Vars:          cssVars(h.opts.Palette.For(h.opts.Mode)),
		SearchTerm:    h.opts.SearchTerm,
		CategoryLabel: logic.CategoryLabel(h.opts.Category),
		NoResultsText: NoResultsText,
		NoResultsHint: NoResultsHint,
		Display:       d,
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	h.page = buf.Bytes()
	return nil
}

// HTML returns the last rendered page
func (h *HTMLTarget) HTML() string { return string(h.page) }

// WriteTo writes the last rendered page to w
func (h *HTMLTarget) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h.page)
	return int64(n), err
}

// cssVars comes from the static palette table, never from feed data
func cssVars(c theme.Colors) template.CSS {
	var sb strings.Builder
	for _, v := range c.Vars() {
		fmt.Fprintf(&sb, "%s: %s; ", v.Name, v.Value)
	}
	return template.CSS(strings.TrimSpace(sb.String()))
}
