package site

import (
	"path/filepath"
	"strings"

	"github.com/loafworks/bread/frontmatter"
)

// OutputFilename returns the HTML filename for a source document: the slug
// when one is set, otherwise the source file's stem.
func OutputFilename(inputPath string, fm frontmatter.Frontmatter) string {
	if fm.Slug != "" {
		return fm.Slug + ".html"
	}
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return "output.html"
	}
	return stem + ".html"
}

// RelativeSubdir returns the document's directory relative to the content
// root, or "" when the document sits directly in the root.
func RelativeSubdir(inputPath, contentRoot string) string {
	rel, err := filepath.Rel(contentRoot, filepath.Dir(inputPath))
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	return rel
}

// PublicURL joins the relative subdirectory and output filename into a
// site-absolute URL with forward slashes.
func PublicURL(relSubdir, outputFilename string) string {
	if relSubdir == "" {
		return "/" + outputFilename
	}
	return "/" + filepath.ToSlash(relSubdir) + "/" + outputFilename
}
