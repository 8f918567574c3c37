package site

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCopyStaticAssets_MirrorsTree(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "css", "style.css"), "body{}")
	writeFile(t, filepath.Join(src, "logo.png"), "png")

	require.NoError(t, CopyStaticAssets(src, dst))
	require.Equal(t, "body{}", readFile(t, filepath.Join(dst, "css", "style.css")))
	require.Equal(t, "png", readFile(t, filepath.Join(dst, "logo.png")))
}

func TestCopyStaticAssets_OverwritesExistingFiles(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "style.css"), "new")
	writeFile(t, filepath.Join(dst, "style.css"), "old")

	require.NoError(t, CopyStaticAssets(src, dst))
	require.Equal(t, "new", readFile(t, filepath.Join(dst, "style.css")))
}

func TestCopyStaticAssets_MissingSourceIsNotAnError(t *testing.T) {
	require.NoError(t, CopyStaticAssets(filepath.Join(t.TempDir(), "static"), t.TempDir()))
}
