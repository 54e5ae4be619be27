// Package html emits standalone HTML form markup from render views. The
// built-in pongo2 template bundle covers the common control kinds (inputs,
// textarea, select, checkbox) and renders the error summary block plus
// inline per-field messages; callers can swap the bundle or the whole
// template engine through options.
package html
