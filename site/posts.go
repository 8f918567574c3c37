package site

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// normalizeTag trims surrounding whitespace and removes interior spaces.
// Tags get no other normalization.
func normalizeTag(tag string) string {
	return strings.ReplaceAll(strings.TrimSpace(tag), " ", "")
}

// TagChips renders the per-page chip fragment for a tag list. Fragments are
// concatenated without separators.
func TagChips(tags []string) string {
	var b strings.Builder
	for _, tag := range tags {
		fmt.Fprintf(&b, `<span class="tag">#%s</span>`, normalizeTag(tag))
	}
	return b.String()
}

// PostListHTML renders the fragment substituted for the {{ post_list }}
// placeholder inside document bodies.
func PostListHTML(posts []PostMetadata) string {
	if len(posts) == 0 {
		return "<p>No posts found.</p>"
	}

	var b strings.Builder
	b.WriteString("<div class=\"post-list\">\n")
	for _, post := range posts {
		fmt.Fprintf(&b, `  <article class="post-item">
    <h3><a href="%s">%s</a></h3>
    <div class="post-meta">
      <span class="post-date">%s</span>
      <span class="post-tags">%s</span>
    </div>
  </article>
`, post.URL, post.Title, post.Date, TagChips(post.Tags))
	}
	b.WriteString("</div>\n")
	return b.String()
}

// PostRowsHTML renders the aggregate page's rows. Links carry the deployment
// base path and chips are clickable for the client-side tag filter.
func PostRowsHTML(posts []PostMetadata, basePath string) string {
	var b strings.Builder
	for _, post := range posts {
		var chips strings.Builder
		for _, tag := range post.Tags {
			t := normalizeTag(tag)
			fmt.Fprintf(&chips, `<span class="tag clickable-tag" data-tag="%s">#%s</span>`, t, t)
		}
		fmt.Fprintf(&b, `  <article class="post-item">
    <h3><a href="%s%s">%s</a></h3>
    <div class="post-meta">
      <span class="post-date">%s</span>
      <span class="post-tags">%s</span>
    </div>
  </article>
`, basePath, post.URL, post.Title, post.Date, chips.String())
	}
	return b.String()
}

// TagOptions renders one <option> per distinct normalized tag across all
// posts, sorted ascending.
func TagOptions(posts []PostMetadata) string {
	seen := make(map[string]bool)
	var tags []string
	for _, post := range posts {
		for _, tag := range post.Tags {
			t := normalizeTag(tag)
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)

	var b strings.Builder
	for _, t := range tags {
		fmt.Fprintf(&b, `<option value="%s">#%s</option>`, t, t)
	}
	return b.String()
}

// WritePostsPage renders the aggregate listing to posts.html at the output
// root. Call it only when at least one post exists; the "posts" template is
// required then and loaded here.
func WritePostsPage(engine *Engine, posts []PostMetadata, outputRoot, basePath string) error {
	if err := engine.Load("posts"); err != nil {
		return err
	}

	rendered, err := engine.Render("posts", map[string]interface{}{
		"post_count":  len(posts),
		"posts":       PostRowsHTML(posts, basePath),
		"tag_options": TagOptions(posts),
	})
	if err != nil {
		return err
	}

	outPath := filepath.Join(outputRoot, "posts.html")
	if err := os.WriteFile(outPath, []byte(rendered), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", outPath)
	}
	return nil
}
