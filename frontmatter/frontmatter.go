// Package frontmatter parses the leading metadata block of a Markdown
// document, delimited by --- lines. Parsing never fails: anything that
// doesn't look like front-matter is returned untouched as body.
package frontmatter

import (
	"strings"
	"unicode"
)

// Frontmatter holds the recognized metadata keys. Zero values mean the key
// was absent; defaults are applied downstream.
type Frontmatter struct {
	Title string
	Date  string
	Slug  string
	Tags  []string
}

const closeMarker = "\n---"

// Parse splits text into front-matter and body. The opening --- is consumed
// only when a closing marker exists; otherwise the whole input is body.
// Malformed lines degrade silently to partial metadata.
func Parse(text string) (Frontmatter, string) {
	var fm Frontmatter

	if !strings.HasPrefix(text, "---") {
		return fm, text
	}

	rest := text[3:]
	end := strings.Index(rest, closeMarker)
	if end < 0 {
		return fm, text
	}

	section := rest[:end]
	body := strings.TrimLeftFunc(rest[end+len(closeMarker):], unicode.IsSpace)

	// listKey tracks a pending block list: a bare "tags:" arms it, any
	// following non-list line disarms it.
	var listKey string
	var tags []string

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "-") {
			if listKey == "tags" {
				if item := strings.TrimSpace(line[1:]); item != "" {
					tags = append(tags, item)
				}
			}
			continue
		}

		listKey = ""

		colon := strings.Index(line, ":")
		if colon < 0 {
			continue
		}

		key := strings.TrimSpace(line[:colon])
		value := strings.TrimSpace(line[colon+1:])

		switch key {
		case "title":
			fm.Title = value
		case "date":
			fm.Date = value
		case "slug":
			fm.Slug = value
		case "tags":
			if value == "" {
				listKey = "tags"
				break
			}
			// Inline form overrides anything collected so far.
			tags = nil
			for _, t := range strings.Split(value, ",") {
				if t = strings.TrimSpace(t); t != "" {
					tags = append(tags, t)
				}
			}
		}
	}

	fm.Tags = tags
	return fm, body
}
