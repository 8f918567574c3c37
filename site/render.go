package site

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/loafworks/bread/frontmatter"
	"github.com/loafworks/bread/markdown"
)

// postListPlaceholder is replaced inside document bodies with the
// pre-rendered post list, so any page can embed the listing.
const postListPlaceholder = "{{ post_list }}"

// RenderPage runs the second pass for one document: parse, convert, build
// the template context, render through the "base" template and write the
// output file. Returns the path written. Any failure is fatal to the build.
func RenderPage(engine *Engine, inputPath, contentRoot, outputRoot, postListHTML string) (string, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", inputPath)
	}

	fm, body := frontmatter.Parse(string(data))
	body = strings.ReplaceAll(body, postListPlaceholder, postListHTML)

	content, err := markdown.ToHTML(body)
	if err != nil {
		return "", errors.Wrapf(err, "converting %s", inputPath)
	}

	title := fm.Title
	if title == "" {
		title = "Untitled"
	}

	rendered, err := engine.Render("base", map[string]interface{}{
		"title":    title,
		"content":  content,
		"tags":     TagChips(fm.Tags),
		"keywords": strings.Join(fm.Tags, ", "),
		"date":     fm.Date,
	})
	if err != nil {
		return "", errors.Wrapf(err, "rendering %s", inputPath)
	}

	outDir := filepath.Join(outputRoot, RelativeSubdir(inputPath, contentRoot))
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return "", errors.WithStack(err)
	}

	outPath := filepath.Join(outDir, OutputFilename(inputPath, fm))
	if err := os.WriteFile(outPath, []byte(rendered), 0644); err != nil {
		return "", errors.Wrapf(err, "writing %s", outPath)
	}
	return outPath, nil
}
