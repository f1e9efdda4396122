package generator

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/aymerick/raymond"

	"github.com/goliatone/go-publish/pkg/interfaces"
)

const (
	templateArticle = "article"
	templateIndex   = "index"
	templateExt     = ".hbs"
)

var (
	pageTemplates    = []string{templateArticle, templateIndex}
	partialTemplates = []string{"header", "footer"}
)

//go:embed templates/*.hbs
var defaultTemplateFS embed.FS

// TemplateRegistry holds the compiled page templates. It is built once and
// never modified afterwards.
type TemplateRegistry struct {
	templates map[string]*raymond.Template
}

var _ interfaces.TemplateRenderer = (*TemplateRegistry)(nil)

// NewTemplateRegistry compiles the page templates and their partials. Files
// named <template>.hbs in overrides replace the embedded defaults. A nil
// overrides filesystem uses the defaults only.
func NewTemplateRegistry(overrides fs.FS, renderer interfaces.MarkdownRenderer) (*TemplateRegistry, error) {
	defaults, err := fs.Sub(defaultTemplateFS, "templates")
	if err != nil {
		return nil, err
	}

	partials := make(map[string]string, len(partialTemplates))
	for _, name := range partialTemplates {
		source, err := templateSource(overrides, defaults, name)
		if err != nil {
			return nil, err
		}
		partials[name] = source
	}

	helpers := templateHelpers(renderer)
	registry := &TemplateRegistry{templates: make(map[string]*raymond.Template, len(pageTemplates))}
	for _, name := range pageTemplates {
		source, err := templateSource(overrides, defaults, name)
		if err != nil {
			return nil, err
		}
		tpl, err := raymond.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("generator: parse template %s: %w", name, err)
		}
		tpl.RegisterHelpers(helpers)
		tpl.RegisterPartials(partials)
		registry.templates[name] = tpl
	}
	return registry, nil
}

func templateSource(overrides, defaults fs.FS, name string) (string, error) {
	file := name + templateExt
	if overrides != nil {
		data, err := fs.ReadFile(overrides, file)
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("generator: read template %s: %w", file, err)
		}
	}
	data, err := fs.ReadFile(defaults, file)
	if err != nil {
		return "", fmt.Errorf("generator: read template %s: %w", file, err)
	}
	return string(data), nil
}

// Render executes the named template. When out is supplied the result is
// written there and the returned string is empty.
func (r *TemplateRegistry) Render(name string, data any, out ...io.Writer) (string, error) {
	tpl, ok := r.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	result, err := tpl.Exec(data)
	if err != nil {
		return "", err
	}
	if len(out) > 0 && out[0] != nil {
		if _, err := io.WriteString(out[0], result); err != nil {
			return "", err
		}
		return "", nil
	}
	return result, nil
}

// Names lists the page templates in the registry.
func (r *TemplateRegistry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for _, name := range pageTemplates {
		if _, ok := r.templates[name]; ok {
			names = append(names, name)
		}
	}
	return names
}
