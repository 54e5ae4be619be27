package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/render"
)

type stubEmitter struct {
	name string
}

func (s stubEmitter) Name() string        { return s.name }
func (s stubEmitter) ContentType() string { return "text/plain" }
func (s stubEmitter) Emit(context.Context, render.View) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubEmitter{name: "html"})
	registry.MustRegister(stubEmitter{name: "json"})

	if !registry.Has("html") {
		t.Fatal("expected html emitter to be registered")
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("expected lookup error for unknown emitter")
	}
	if diff := cmp.Diff([]string{"html", "json"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_RejectsDuplicatesAndNil(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubEmitter{name: "html"})

	if err := registry.Register(stubEmitter{name: "html"}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected nil emitter registration to fail")
	}
	if err := registry.Register(stubEmitter{}); err == nil {
		t.Fatal("expected unnamed emitter registration to fail")
	}
}
