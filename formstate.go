package formstate

import (
	"context"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formstate/pkg/emitters/html"
	"github.com/goliatone/go-formstate/pkg/emitters/jsonform"
	"github.com/goliatone/go-formstate/pkg/render"
	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/state"
	"github.com/goliatone/go-formstate/pkg/validate"
)

// Snapshot is the read-only result of one submission attempt.
type Snapshot = state.Snapshot

// Builder accumulates submitted values and validation messages.
type Builder = state.Builder

// FieldErrors holds ordered per-field validation messages.
type FieldErrors = state.FieldErrors

// Schema describes a form: its identity and ordered field descriptors.
type Schema = schema.Schema

// Field describes one form control.
type Field = schema.Field

// FieldInstruction is one field-rendering decision.
type FieldInstruction = render.FieldInstruction

// View bundles field instructions with the error summary.
type View = render.View

// RuleSet maps field names to constraint rules.
type RuleSet = validate.RuleSet

// NewBuilder starts an empty snapshot builder.
func NewBuilder() *Builder {
	return state.NewBuilder()
}

// Option configures a Generator before construction.
type Option func(*config)

type config struct {
	registry      *render.Registry
	emitters      []render.Emitter
	renderOptions []render.Option
	selector      theme.ThemeSelector
	themeName     string
	themeVariant  string
}

// WithRegistry replaces the default emitter registry. The default emitters
// are not registered on a caller-supplied registry.
func WithRegistry(registry *render.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithEmitter registers an additional emitter.
func WithEmitter(emitter render.Emitter) Option {
	return func(cfg *config) {
		if emitter != nil {
			cfg.emitters = append(cfg.emitters, emitter)
		}
	}
}

// WithRenderOptions forwards options to the underlying renderer (class
// overrides, extra classes, theme config).
func WithRenderOptions(options ...render.Option) Option {
	return func(cfg *config) {
		cfg.renderOptions = append(cfg.renderOptions, options...)
	}
}

// WithThemeSelector resolves class decisions through a go-theme selector at
// construction time.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(cfg *config) {
		cfg.selector = selector
		cfg.themeName = name
		cfg.themeVariant = variant
	}
}

// Generator ties the renderer and the emitter registry together so callers
// can go from schema plus snapshot to bytes in one call.
type Generator struct {
	renderer *render.Renderer
	registry *render.Registry
}

// New builds a Generator. Without options it carries the built-in HTML and
// JSON emitters and the default class decisions.
func New(options ...Option) (*Generator, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.selector != nil {
		selection, err := cfg.selector.Select(cfg.themeName, cfg.themeVariant)
		if err != nil {
			return nil, fmt.Errorf("formstate: select theme: %w", err)
		}
		cfg.renderOptions = append(cfg.renderOptions, render.WithThemeSelection(selection))
	}

	registry := cfg.registry
	if registry == nil {
		registry = render.NewRegistry()
		htmlEmitter, err := html.New()
		if err != nil {
			return nil, fmt.Errorf("formstate: build html emitter: %w", err)
		}
		registry.MustRegister(htmlEmitter)
		registry.MustRegister(jsonform.New())
	}
	for _, emitter := range cfg.emitters {
		if err := registry.Register(emitter); err != nil {
			return nil, fmt.Errorf("formstate: register emitter: %w", err)
		}
	}

	return &Generator{
		renderer: render.New(cfg.renderOptions...),
		registry: registry,
	}, nil
}

// Renderer exposes the underlying pure renderer.
func (g *Generator) Renderer() *render.Renderer {
	return g.renderer
}

// Emitters lists the registered emitter names.
func (g *Generator) Emitters() []string {
	return g.registry.List()
}

// Emit renders the schema against the snapshot and serialises the view with
// the named emitter.
func (g *Generator) Emit(ctx context.Context, emitterName string, s Schema, snapshot *Snapshot) ([]byte, error) {
	emitter, err := g.registry.Get(emitterName)
	if err != nil {
		return nil, fmt.Errorf("formstate: %w", err)
	}
	out, err := emitter.Emit(ctx, g.renderer.View(snapshot, s))
	if err != nil {
		return nil, fmt.Errorf("formstate: emit %q: %w", emitterName, err)
	}
	return out, nil
}

// RenderHTML is the simplest entry point for callers that just want HTML
// output of a form in its current submission state.
func RenderHTML(ctx context.Context, s Schema, snapshot *Snapshot, options ...Option) ([]byte, error) {
	gen, err := New(options...)
	if err != nil {
		return nil, err
	}
	return gen.Emit(ctx, "html", s, snapshot)
}

// RenderJSON serialises the rendered view as JSON for client-side renderers.
func RenderJSON(ctx context.Context, s Schema, snapshot *Snapshot, options ...Option) ([]byte, error) {
	gen, err := New(options...)
	if err != nil {
		return nil, err
	}
	return gen.Emit(ctx, "json", s, snapshot)
}
