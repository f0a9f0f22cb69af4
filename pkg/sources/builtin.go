package sources

import (
	"strings"
	"text/template"

	"iconpack/pkg/data"
)

// Builtin generates the house icon set programmatically instead of reading a
// vendor package: one SVG per glyph and theme, rendered from a template. A
// glyph/theme combination that fails to render is skipped; it only shows up
// as a lower total.
type Builtin struct {
	themes []builtinTheme
	glyphs []builtinGlyph
}

type builtinTheme struct {
	style  string
	stroke string
	fill   string
	width  string
}

type builtinGlyph struct {
	name string
	body string
}

func NewBuiltin() *Builtin {
	return &Builtin{
		themes: []builtinTheme{
			{style: "outline", stroke: "currentColor", fill: "none", width: "2"},
			{style: "solid", stroke: "none", fill: "currentColor", width: "0"},
		},
		glyphs: builtinGlyphs,
	}
}

func (b *Builtin) Name() string { return "builtin" }

func (b *Builtin) Metadata() data.LibraryMetadata {
	return data.LibraryMetadata{
		ID:          "builtin",
		Name:        "Built-in",
		Version:     "1.0.0",
		URL:         "",
		License:     "MIT",
		LicenseURL:  "",
		Attribution: "iconpack",
		Description: "House glyphs generated by the pipeline itself",
	}
}

const builtinDocument = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="{{.Fill}}" stroke="{{.Stroke}}" stroke-width="{{.Width}}" stroke-linecap="round" stroke-linejoin="round">{{.Body}}</svg>`

// builtinGlyphs carry their drawing commands inline; each body may reference
// the theme fields through template actions.
var builtinGlyphs = []builtinGlyph{
	{"placeholder", `<rect x="3" y="3" width="18" height="18" rx="2"/><path d="M3 3l18 18M21 3L3 21"/>`},
	{"dot", `<circle cx="12" cy="12" r="4" fill="{{.Stroke}}"/>`},
	{"check-badge", `<circle cx="12" cy="12" r="9"/><path d="M8 12l3 3 5-6"/>`},
	{"cross-badge", `<circle cx="12" cy="12" r="9"/><path d="M9 9l6 6M15 9l-6 6"/>`},
	{"warning-badge", `<path d="M12 3L2 21h20L12 3z"/><path d="M12 10v5"/><circle cx="12" cy="18" r="0.5" fill="{{.Stroke}}"/>`},
	{"grip-handle", `<circle cx="9" cy="6" r="1.5"/><circle cx="15" cy="6" r="1.5"/><circle cx="9" cy="12" r="1.5"/><circle cx="15" cy="12" r="1.5"/><circle cx="9" cy="18" r="1.5"/><circle cx="15" cy="18" r="1.5"/>`},
	{"swatch", `<rect x="4" y="4" width="16" height="16" rx="3"/><path d="M4 12h16"/>`},
}

func (b *Builtin) Load(outDir string) ([]data.IconRecord, error) {
	var icons []data.IconRecord
	for _, theme := range b.themes {
		for _, glyph := range b.glyphs {
			svg, ok := renderGlyph(glyph, theme)
			if !ok {
				continue
			}
			if err := writeIcon(outDir, b.Name(), theme.style, glyph.name, []byte(svg)); err != nil {
				return nil, err
			}
			icons = append(icons, newRecord(b.Name(), theme.style, glyph.name, "", nil))
		}
	}
	return icons, nil
}

// renderGlyph expands one glyph body and the outer document for a theme.
// Render errors are swallowed: one bad glyph must not take the library down.
func renderGlyph(glyph builtinGlyph, theme builtinTheme) (string, bool) {
	ctx := struct {
		Stroke, Fill, Width, Body string
	}{Stroke: theme.stroke, Fill: theme.fill, Width: theme.width}

	body, ok := renderTemplate(glyph.body, ctx)
	if !ok {
		return "", false
	}
	ctx.Body = body

	return renderTemplate(builtinDocument, ctx)
}

func renderTemplate(text string, ctx any) (string, bool) {
	tmpl, err := template.New("svg").Parse(text)
	if err != nil {
		return "", false
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, ctx); err != nil {
		return "", false
	}
	return out.String(), true
}
