package render

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme token keys the renderer understands. Themes that define them override
// the default class decisions without any renderer-side configuration.
const (
	ThemeTokenFieldClass = "fieldClass"
	ThemeTokenErrorClass = "fieldErrorClass"
)

// Option customises a Renderer before first use.
type Option func(*Renderer)

// WithFieldClass overrides the base class applied to every field.
func WithFieldClass(class string) Option {
	return func(r *Renderer) {
		if class = strings.TrimSpace(class); class != "" {
			r.fieldClass = class
		}
	}
}

// WithErrorClass overrides the error-marker class applied to invalid fields.
func WithErrorClass(class string) Option {
	return func(r *Renderer) {
		if class = strings.TrimSpace(class); class != "" {
			r.errorClass = class
		}
	}
}

// WithExtraClasses appends additional classes to every field's class list,
// after the base class and before the error marker.
func WithExtraClasses(classes ...string) Option {
	return func(r *Renderer) {
		for _, class := range classes {
			if class = strings.TrimSpace(class); class != "" {
				r.extra = append(r.extra, class)
			}
		}
	}
}

// WithThemeConfig resolves class decisions from a go-theme renderer config.
// Tokens named by ThemeTokenFieldClass / ThemeTokenErrorClass replace the
// defaults; absent tokens leave the current decision untouched.
func WithThemeConfig(cfg *theme.RendererConfig) Option {
	return func(r *Renderer) {
		if cfg == nil || len(cfg.Tokens) == 0 {
			return
		}
		if class := strings.TrimSpace(cfg.Tokens[ThemeTokenFieldClass]); class != "" {
			r.fieldClass = class
		}
		if class := strings.TrimSpace(cfg.Tokens[ThemeTokenErrorClass]); class != "" {
			r.errorClass = class
		}
	}
}

// WithThemeSelection resolves class decisions from a selected theme's
// manifest tokens, mirroring WithThemeConfig for callers that hold a
// theme.Selection from a ThemeSelector.
func WithThemeSelection(selection *theme.Selection) Option {
	return func(r *Renderer) {
		if selection == nil || selection.Manifest == nil {
			return
		}
		WithThemeConfig(&theme.RendererConfig{
			Theme:   selection.Theme,
			Variant: selection.Variant,
			Tokens:  selection.Manifest.Tokens,
		})(r)
	}
}
