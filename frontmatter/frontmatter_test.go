package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_NoFrontmatter_ReturnsBodyUnchanged(t *testing.T) {
	input := "# Hello\n\nBody text.\n"

	fm, body := Parse(input)
	require.Equal(t, Frontmatter{}, fm)
	require.Equal(t, input, body)
}

func TestParse_MissingClosingMarker_LeavesInputUntouched(t *testing.T) {
	input := "---\nkey: v\nno closer"

	fm, body := Parse(input)
	require.Equal(t, Frontmatter{}, fm)
	require.Equal(t, input, body)
}

func TestParse_BasicFields(t *testing.T) {
	fm, body := Parse("---\ntitle: Hello\ndate: 2024-01-01\nslug: hi\n---\n# Heading\n")
	require.Equal(t, "Hello", fm.Title)
	require.Equal(t, "2024-01-01", fm.Date)
	require.Equal(t, "hi", fm.Slug)
	require.Equal(t, "# Heading\n", body)
}

func TestParse_EmptyFrontmatterBlock(t *testing.T) {
	fm, body := Parse("---\n---\nbody\n")
	require.Equal(t, Frontmatter{}, fm)
	require.Equal(t, "body\n", body)
}

func TestParse_BodyLeadingWhitespaceTrimmed(t *testing.T) {
	_, body := Parse("---\ntitle: x\n---\n\n\n  body starts here")
	require.Equal(t, "body starts here", body)
}

func TestParse_InlineTags(t *testing.T) {
	fm, _ := Parse("---\ntags: a, b, c\n---\nbody")
	require.Equal(t, []string{"a", "b", "c"}, fm.Tags)
}

func TestParse_BlockTags(t *testing.T) {
	fm, _ := Parse("---\ntags:\n- a\n- b\n- c\n---\nbody")
	require.Equal(t, []string{"a", "b", "c"}, fm.Tags)
}

func TestParse_BlockTagsKeepInteriorSpaces(t *testing.T) {
	fm, _ := Parse("---\ntags:\n- rust\n- web dev\n---\nbody")
	require.Equal(t, []string{"rust", "web dev"}, fm.Tags)
}

func TestParse_InlineTagsDropEmptyElements(t *testing.T) {
	fm, _ := Parse("---\ntags: a, , b,\n---\nbody")
	require.Equal(t, []string{"a", "b"}, fm.Tags)
}

func TestParse_InlineTagsOverrideBlockTags(t *testing.T) {
	fm, _ := Parse("---\ntags:\n- x\ntags: a, b\n- y\n---\nbody")
	require.Equal(t, []string{"a", "b"}, fm.Tags)
}

func TestParse_UnknownKeyStopsBlockTags(t *testing.T) {
	fm, _ := Parse("---\ntags:\n- a\nauthor: someone\n- b\n---\nbody")
	require.Equal(t, []string{"a"}, fm.Tags)
}

func TestParse_ListItemsWithoutTagsKeyIgnored(t *testing.T) {
	fm, _ := Parse("---\n- stray\ntitle: ok\n---\nbody")
	require.Nil(t, fm.Tags)
	require.Equal(t, "ok", fm.Title)
}

func TestParse_LinesWithoutColonIgnored(t *testing.T) {
	fm, _ := Parse("---\njunk line\ntitle: ok\n---\nbody")
	require.Equal(t, "ok", fm.Title)
}

func TestParse_ValueMayContainColon(t *testing.T) {
	fm, _ := Parse("---\ntitle: a: b\n---\nbody")
	require.Equal(t, "a: b", fm.Title)
}

func TestParse_EmptyInput(t *testing.T) {
	fm, body := Parse("")
	require.Equal(t, Frontmatter{}, fm)
	require.Equal(t, "", body)
}
