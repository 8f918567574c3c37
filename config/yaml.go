package config

// config/yaml.go

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// DefaultPostsBasePath is the deployment base path prepended to post links
// on the aggregate listing when the manifest doesn't override it.
const DefaultPostsBasePath = "/bread"

type JavascriptTarget struct {
	Source string `yaml:"source"`
	OutDir string `yaml:"out_dir"`
}

// SiteManifest is the optional site.yaml in the working directory.
type SiteManifest struct {
	Origin            string                      `yaml:"origin"`
	PostsBasePath     string                      `yaml:"posts_base_path"`
	JavascriptTargets map[string]JavascriptTarget `yaml:"javascript"`
}

// Load reads the site manifest. A missing file is not an error and yields
// the defaults; a malformed file is.
func Load(filename string) (*SiteManifest, error) {
	manifest := &SiteManifest{PostsBasePath: DefaultPostsBasePath}

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return manifest, nil
		}
		return nil, errors.WithStack(err)
	}

	if err := yaml.Unmarshal(data, manifest); err != nil {
		return nil, errors.Wrapf(err, "parsing manifest %s", filename)
	}
	if manifest.PostsBasePath == "" {
		manifest.PostsBasePath = DefaultPostsBasePath
	}

	return manifest, nil
}
