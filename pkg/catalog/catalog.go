package catalog

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
	"thirdcoast.systems/rasterkernels/pkg/kernels"
)

var (
	bfRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink | blackfriday.NofollowLinks | blackfriday.HrefTargetBlank,
	})
	bfExtensions = blackfriday.NoIntraEmphasis | blackfriday.Tables | blackfriday.SpaceHeadings | blackfriday.HeadingIDs | blackfriday.AutoHeadingIDs
	policy       = bluemonday.UGCPolicy()
)

var (
	renderOnce   sync.Once
	renderedHTML template.HTML
	renderedText string
)

// Markdown returns the preset catalogue as a markdown document, one table row
// per preset in code order.
func Markdown() string {
	var b strings.Builder
	b.WriteString("# Convolution kernel presets\n\n")
	fmt.Fprintf(&b, "%d predefined kernels, selected by integer code.\n\n", kernels.Count)
	b.WriteString("| Code | Name | Label | Family |\n")
	b.WriteString("|---:|---|---|---|\n")
	for _, d := range kernels.Catalog() {
		fmt.Fprintf(&b, "| %d | `%s` | %s | %s |\n", d.Code, d.Name, d.Label, d.Family)
	}
	return b.String()
}

func render() {
	unsafe := blackfriday.Run([]byte(Markdown()),
		blackfriday.WithRenderer(bfRenderer),
		blackfriday.WithExtensions(bfExtensions),
	)
	renderedHTML = template.HTML(bytes.TrimSpace(policy.SanitizeBytes(unsafe)))
	renderedText = string(bytes.TrimSpace(bluemonday.StrictPolicy().SanitizeBytes(unsafe)))
}

// HTML returns the catalogue rendered to sanitized HTML.
func HTML() template.HTML {
	renderOnce.Do(render)
	return renderedHTML
}

// PlainText returns the catalogue with all markup removed.
func PlainText() string {
	renderOnce.Do(render)
	return renderedText
}
