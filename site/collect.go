package site

import (
	"os"
	"sort"
	"strings"

	"github.com/loafworks/bread/frontmatter"
)

// PostMetadata is the aggregate listing's record for one document.
type PostMetadata struct {
	Title string
	Date  string
	Tags  []string
	URL   string
}

// CollectPosts runs the first pass: parse front-matter, resolve the output
// filename and URL, drop index pages and sort the rest newest-first. Files
// that cannot be read are skipped here; the render pass surfaces the error.
func CollectPosts(files []string, contentRoot string) []PostMetadata {
	var posts []PostMetadata
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		fm, _ := frontmatter.Parse(string(data))
		name := OutputFilename(path, fm)
		if strings.Contains(name, "index") {
			continue
		}

		title := fm.Title
		if title == "" {
			title = "Untitled"
		}
		posts = append(posts, PostMetadata{
			Title: title,
			Date:  fm.Date,
			Tags:  fm.Tags,
			URL:   PublicURL(RelativeSubdir(path, contentRoot), name),
		})
	}

	// Newest first; discovery order breaks ties.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
	return posts
}
