// Package site implements the build pipeline: discover Markdown sources,
// collect post metadata, render every page through the base template, emit
// the aggregate posts listing and mirror static assets.
package site

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/loafworks/bread/config"
	"github.com/loafworks/bread/javascript"
)

// Options holds the build command's directory layout.
type Options struct {
	ContentDir  string
	OutputDir   string
	TemplateDir string
}

// Build runs the full pipeline, sequentially: discover, pass 1 (collect and
// sort), pass 2 (render each page), aggregate listing, JavaScript bundling
// and static assets. The first error aborts the build; outputs already
// written are left in place.
func Build(opts Options, manifest *config.SiteManifest) error {
	if err := os.MkdirAll(opts.OutputDir, os.ModePerm); err != nil {
		return errors.WithStack(err)
	}

	engine := NewEngine(opts.TemplateDir)
	if err := engine.Load("base"); err != nil {
		return err
	}

	files, err := FindMarkdownFiles(opts.ContentDir)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Printf("No markdown files found in %s\n", opts.ContentDir)
	} else {
		fmt.Printf("Found %d markdown file(s)\n", len(files))

		posts := CollectPosts(files, opts.ContentDir)
		postListHTML := PostListHTML(posts)

		for _, file := range files {
			outPath, err := RenderPage(engine, file, opts.ContentDir, opts.OutputDir, postListHTML)
			if err != nil {
				return err
			}
			fmt.Printf("  %s -> %s\n", file, outPath)
		}

		if len(posts) > 0 {
			if err := WritePostsPage(engine, posts, opts.OutputDir, manifest.PostsBasePath); err != nil {
				return err
			}
			fmt.Printf("  posts.html (%d post(s))\n", len(posts))
		}
	}

	if len(manifest.JavascriptTargets) > 0 {
		if err := javascript.CompileTargets(manifest.JavascriptTargets, opts.OutputDir); err != nil {
			return err
		}
	}

	return CopyStaticAssets("static", opts.OutputDir)
}
