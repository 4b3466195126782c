// Package templates holds the project scaffolding written by `0x1 new`.
package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"text/template"

	"github.com/Triex/0x1/internal/errors"
)

// Data contains the values substituted into template files.
type Data struct {
	// ProjectName is the name of the project.
	ProjectName string

	// ModulePath is the Go module path.
	ModulePath string

	// Description is a short project description.
	Description string

	// Tailwind enables the Tailwind CSS pipeline.
	Tailwind bool
}

// Template represents a project template.
type Template struct {
	// Name is the template name.
	Name string

	// Description describes the template.
	Description string

	// Files maps relative paths to file contents. Contents are
	// text/template bodies rendered against Data.
	Files map[string]string
}

// Available templates.
var templates = map[string]*Template{
	"minimal": minimalTemplate(),
	"full":    fullTemplate(),
}

// Get returns a template by name.
func Get(name string) (*Template, error) {
	t, ok := templates[name]
	if !ok {
		return nil, errors.New("X010", errors.CategoryCLI, "unknown template "+name).
			WithHint("available templates: " + namesList())
	}
	return t, nil
}

// Names returns the available template names, sorted.
func Names() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func namesList() string {
	var b bytes.Buffer
	for i, name := range Names() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name)
	}
	return b.String()
}

// Write renders the template into dir, creating directories as needed.
// Existing files are not overwritten.
func (t *Template) Write(dir string, data Data) error {
	for rel, body := range t.Files {
		tpl, err := template.New(rel).Parse(body)
		if err != nil {
			return errors.New("X011", errors.CategoryCLI, "bad template file "+rel).Wrap(err)
		}

		var buf bytes.Buffer
		if err := tpl.Execute(&buf, data); err != nil {
			return errors.New("X011", errors.CategoryCLI, "bad template file "+rel).Wrap(err)
		}

		path := filepath.Join(dir, rel)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return err
		}
	}
	return nil
}
