package site

import (
	"html/template"
	"os"
	"path/filepath"

	"github.com/gobuffalo/plush"
	"github.com/pkg/errors"
)

// Engine loads plush templates from a directory and renders them without
// escaping: the pipeline pre-renders all HTML fragments, so substituted
// string values are injected as template.HTML.
type Engine struct {
	dir       string
	templates map[string]*plush.Template
}

func NewEngine(dir string) *Engine {
	return &Engine{dir: dir, templates: make(map[string]*plush.Template)}
}

// Load parses {dir}/{name}.html and registers it under name.
func (e *Engine) Load(name string) error {
	path := filepath.Join(e.dir, name+".html")
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading template %s", path)
	}

	tmpl, err := plush.Parse(string(content))
	if err != nil {
		return errors.Wrapf(err, "parsing template %s", path)
	}

	e.templates[name] = tmpl
	return nil
}

// Render executes a loaded template with the given variables.
func (e *Engine) Render(name string, vars map[string]interface{}) (string, error) {
	tmpl, ok := e.templates[name]
	if !ok {
		return "", errors.Errorf("template %q not loaded", name)
	}

	ctx := plush.NewContext()
	for key, value := range vars {
		if s, ok := value.(string); ok {
			ctx.Set(key, template.HTML(s))
			continue
		}
		ctx.Set(key, value)
	}

	out, err := tmpl.Exec(ctx)
	if err != nil {
		return "", errors.Wrapf(err, "executing template %q", name)
	}
	return out, nil
}
