package jsonform

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-formstate/pkg/render"
)

// Option configures the emitter before construction.
type Option func(*Emitter)

// WithIndent sets the indentation used for the JSON document. An empty
// string produces compact output.
func WithIndent(indent string) Option {
	return func(e *Emitter) {
		e.indent = indent
	}
}

// Emitter serialises a render view to JSON, suitable for API responses that
// let a client-side renderer draw the form. It implements render.Emitter.
type Emitter struct {
	indent string
}

// New constructs the JSON emitter. Output is indented with two spaces by
// default.
func New(options ...Option) *Emitter {
	e := &Emitter{indent: "  "}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

func (e *Emitter) Name() string {
	return "json"
}

func (e *Emitter) ContentType() string {
	return "application/json"
}

// Emit marshals the view. Field instructions serialise with their resolved
// class lists and inline messages, so consumers apply the same decisions the
// HTML path would.
func (e *Emitter) Emit(_ context.Context, view render.View) ([]byte, error) {
	var (
		out []byte
		err error
	)
	if e.indent == "" {
		out, err = json.Marshal(view)
	} else {
		out, err = json.MarshalIndent(view, "", e.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("jsonform: marshal view: %w", err)
	}
	return out, nil
}
