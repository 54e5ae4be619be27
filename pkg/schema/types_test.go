package schema_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/schema"
)

func TestSchema_Validate(t *testing.T) {
	cases := []struct {
		name    string
		schema  schema.Schema
		wantErr string
	}{
		{
			name: "valid",
			schema: schema.Schema{Fields: []schema.Field{
				{Name: "name", Type: schema.FieldTypeText},
				{Name: "email", Type: schema.FieldTypeEmail},
			}},
		},
		{
			name:    "empty name",
			schema:  schema.Schema{Fields: []schema.Field{{Name: "  "}}},
			wantErr: "empty name",
		},
		{
			name: "duplicate field",
			schema: schema.Schema{Fields: []schema.Field{
				{Name: "name"}, {Name: "name"},
			}},
			wantErr: `duplicate field "name"`,
		},
		{
			name:    "unknown type",
			schema:  schema.Schema{Fields: []schema.Field{{Name: "name", Type: "carousel"}}},
			wantErr: "unknown type",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.schema.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSchema_NormalizeDefaults(t *testing.T) {
	in := schema.Schema{
		Name: " signup ",
		Fields: []schema.Field{
			{Name: "firstName"},
			{Name: "password", Type: schema.FieldTypePassword},
		},
	}

	got := in.Normalize()

	if got.Name != "signup" {
		t.Fatalf("expected trimmed name, got %q", got.Name)
	}
	if got.Fields[0].Type != schema.FieldTypeText {
		t.Fatalf("expected text fallback type, got %q", got.Fields[0].Type)
	}
	if got.Fields[0].Label != "First Name" {
		t.Fatalf("expected derived label, got %q", got.Fields[0].Label)
	}
	if !got.Fields[1].NoEcho {
		t.Fatal("expected password field to default to NoEcho")
	}
	if in.Fields[1].NoEcho {
		t.Fatal("Normalize mutated its receiver")
	}
}

func TestSchema_FieldLookupAndNames(t *testing.T) {
	s := schema.Schema{Fields: []schema.Field{
		{Name: "name"},
		{Name: "email"},
	}}

	if _, ok := s.Field("email"); !ok {
		t.Fatal("expected email field to resolve")
	}
	if _, ok := s.Field("missing"); ok {
		t.Fatal("expected missing field to report absent")
	}
	if diff := cmp.Diff([]string{"name", "email"}, s.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"":              "",
		"name":          "Name",
		"emailAddress":  "Email Address",
		"first_name":    "First Name",
		"zip-code":      "Zip Code",
		"address2":      "Address 2",
		"APIToken":      "Apitoken",
		"createdAtDate": "Created At Date",
	}
	for input, want := range cases {
		if got := schema.DefaultLabeler(input); got != want {
			t.Errorf("DefaultLabeler(%q) = %q, want %q", input, got, want)
		}
	}
}
