package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-formstate/pkg/render"
	rendertemplate "github.com/goliatone/go-formstate/pkg/render/template"
	gotemplate "github.com/goliatone/go-formstate/pkg/render/template/gotemplate"
)

const templateName = "templates/form.tmpl"

// Option configures the emitter before construction.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	action           string
	method           string
	formClass        string
	errorsClass      string
	messageClass     string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithAction sets the form's action attribute.
func WithAction(action string) Option {
	return func(cfg *config) {
		cfg.action = strings.TrimSpace(action)
	}
}

// WithMethod overrides the form method (default "post").
func WithMethod(method string) Option {
	return func(cfg *config) {
		if method = strings.TrimSpace(method); method != "" {
			cfg.method = strings.ToLower(method)
		}
	}
}

// WithFormClass overrides the class on the form element.
func WithFormClass(class string) Option {
	return func(cfg *config) {
		if class = strings.TrimSpace(class); class != "" {
			cfg.formClass = class
		}
	}
}

// WithErrorsClass overrides the class on the error summary block.
func WithErrorsClass(class string) Option {
	return func(cfg *config) {
		if class = strings.TrimSpace(class); class != "" {
			cfg.errorsClass = class
		}
	}
}

// Emitter renders a view into standalone HTML using the embedded template
// bundle. It implements render.Emitter.
type Emitter struct {
	templates    rendertemplate.TemplateRenderer
	action       string
	method       string
	formClass    string
	errorsClass  string
	messageClass string
}

// New constructs the HTML emitter applying any provided options.
func New(options ...Option) (*Emitter, error) {
	cfg := config{
		templateFS:   TemplatesFS(),
		method:       "post",
		formClass:    DefaultFormClass,
		errorsClass:  DefaultErrorsClass,
		messageClass: DefaultMessageClass,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html emitter: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Emitter{
		templates:    renderer,
		action:       cfg.action,
		method:       cfg.method,
		formClass:    cfg.formClass,
		errorsClass:  cfg.errorsClass,
		messageClass: cfg.messageClass,
	}, nil
}

func (e *Emitter) Name() string {
	return "html"
}

func (e *Emitter) ContentType() string {
	return "text/html; charset=utf-8"
}

// Emit renders the view through the template bundle. Help text is sanitized
// to a small inline vocabulary before it reaches the template; everything
// else relies on the engine's escaping.
func (e *Emitter) Emit(_ context.Context, view render.View) ([]byte, error) {
	if e.templates == nil {
		return nil, fmt.Errorf("html emitter: template renderer is nil")
	}

	result, err := e.templates.RenderTemplate(templateName, e.templateData(view))
	if err != nil {
		return nil, fmt.Errorf("html emitter: render template: %w", err)
	}
	return []byte(result), nil
}

func (e *Emitter) templateData(view render.View) map[string]any {
	fields := make([]map[string]any, 0, len(view.Fields))
	for _, instruction := range view.Fields {
		fields = append(fields, fieldData(instruction))
	}

	return map[string]any{
		"title":        view.Title,
		"action":       e.action,
		"method":       e.method,
		"formClass":    e.formClass,
		"errorsClass":  e.errorsClass,
		"messageClass": e.messageClass,
		"summary":      view.Summary,
		"fields":       fields,
	}
}

func fieldData(instruction render.FieldInstruction) map[string]any {
	data := map[string]any{
		"name":        instruction.Name,
		"label":       instruction.Label,
		"type":        string(instruction.Type),
		"value":       instruction.Value,
		"class":       instruction.ClassAttr(),
		"errors":      instruction.Errors,
		"placeholder": instruction.Placeholder,
		"help":        sanitizeHelpMarkup(instruction.Help),
		"required":    instruction.Required,
		"checked":     isChecked(instruction.Value),
	}

	if len(instruction.Options) > 0 {
		options := make([]map[string]any, 0, len(instruction.Options))
		for _, option := range instruction.Options {
			label := option.Label
			if label == "" {
				label = option.Value
			}
			options = append(options, map[string]any{
				"value":    option.Value,
				"label":    label,
				"selected": option.Value == instruction.Value,
			})
		}
		data["options"] = options
	}

	return data
}

func isChecked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}
