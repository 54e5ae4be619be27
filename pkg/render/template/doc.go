// Package template defines the engine-agnostic template seam emitters render
// through, plus the default pongo2-backed adapter in the gotemplate
// subpackage.
package template
