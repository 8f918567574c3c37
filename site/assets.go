package site

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// CopyStaticAssets mirrors the static tree into the output root, overwriting
// existing files. A missing source directory is informational only.
func CopyStaticAssets(staticDir, outputRoot string) error {
	info, err := os.Stat(staticDir)
	if err != nil || !info.IsDir() {
		fmt.Println("No static directory found. Create 'static/' for CSS and images.")
		return nil
	}
	return copyDir(staticDir, outputRoot)
}

func copyDir(src, dst string) error {
	if err := os.MkdirAll(dst, os.ModePerm); err != nil {
		return errors.WithStack(err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.WithStack(err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
		fmt.Printf("Copied %s\n", dstPath)
	}
	return nil
}

func copyFile(src, dst string) error {
	input, err := os.ReadFile(src)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := os.WriteFile(dst, input, 0644); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
