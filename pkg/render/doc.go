// Package render maps a submission snapshot and a field schema into ordered
// field-rendering instructions: the pre-filled value, the CSS class decision
// (base class plus an error marker if and only if the field has messages),
// and the aggregate error summary. The Renderer is pure; everything that can
// fail (templates, IO) lives behind the Emitter seam in pkg/emitters.
package render
