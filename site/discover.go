package site

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FindMarkdownFiles walks root depth-first and returns every regular file
// whose extension is exactly ".md", in the order the filesystem reports
// directory entries. A missing or non-directory root yields no files.
func FindMarkdownFiles(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, nil
	}
	return findMarkdownFiles(root)
}

func findMarkdownFiles(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	// os.ReadDir sorts entries; the raw handle preserves native order.
	entries, err := f.ReadDir(-1)
	f.Close()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var files []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			sub, err := findMarkdownFiles(path)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
		case entry.Type().IsRegular() && filepath.Ext(path) == ".md":
			files = append(files, path)
		}
	}
	return files, nil
}
