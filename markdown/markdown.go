// Package markdown converts Markdown source to HTML.
package markdown

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Raw HTML must pass through untouched: the pipeline injects pre-rendered
// fragments into document bodies before conversion.
var engine = goldmark.New(
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.Table,
		extension.Footnote,
		extension.TaskList,
	),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// ToHTML renders a Markdown document body to HTML.
func ToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := engine.Convert([]byte(src), &buf); err != nil {
		return "", errors.WithStack(err)
	}
	return buf.String(), nil
}
