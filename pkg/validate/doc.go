// Package validate produces submission snapshots: it is the step between
// receiving posted values and rendering them back. Two producers are
// provided: declarative rule validation driven by the field schema, and a
// struct adapter backed by go-playground/validator with translated messages.
// Both capture every submitted value alongside the violations so renderers
// can pre-fill the re-displayed form.
package validate
