package schema_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/schema"
)

const signupSpec = `{
  "openapi": "3.0.3",
  "info": {"title": "People", "version": "1.0.0"},
  "paths": {
    "/people": {
      "post": {
        "operationId": "createPerson",
        "summary": "Create a person",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["name", "email"],
                "properties": {
                  "name": {"type": "string", "description": "Display name"},
                  "email": {"type": "string", "format": "email"},
                  "password": {"type": "string", "format": "password"},
                  "age": {"type": "integer"},
                  "newsletter": {"type": "boolean"},
                  "plan": {"type": "string", "enum": ["free", "pro"]}
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "created"}}
      }
    }
  }
}`

func TestFromOpenAPI_DerivesSchema(t *testing.T) {
	got, err := schema.FromOpenAPI(context.Background(), []byte(signupSpec), "createPerson")
	if err != nil {
		t.Fatalf("from openapi: %v", err)
	}

	if got.Name != "createPerson" {
		t.Fatalf("unexpected schema name %q", got.Name)
	}
	if got.Title != "Create a person" {
		t.Fatalf("unexpected title %q", got.Title)
	}

	// Properties are emitted alphabetically.
	wantNames := []string{"age", "email", "name", "newsletter", "password", "plan"}
	if diff := cmp.Diff(wantNames, got.Names()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	cases := map[string]schema.FieldType{
		"age":        schema.FieldTypeNumber,
		"email":      schema.FieldTypeEmail,
		"name":       schema.FieldTypeText,
		"newsletter": schema.FieldTypeCheckbox,
		"password":   schema.FieldTypePassword,
		"plan":       schema.FieldTypeSelect,
	}
	for name, wantType := range cases {
		field, ok := got.Field(name)
		if !ok {
			t.Fatalf("missing field %q", name)
		}
		if field.Type != wantType {
			t.Errorf("field %q type = %q, want %q", name, field.Type, wantType)
		}
	}

	password, _ := got.Field("password")
	if !password.NoEcho {
		t.Fatal("expected password field to be NoEcho")
	}

	name, _ := got.Field("name")
	if !name.Required {
		t.Fatal("expected name to carry the required flag")
	}
	if name.Help != "Display name" {
		t.Fatalf("expected description to flow into help text, got %q", name.Help)
	}

	plan, _ := got.Field("plan")
	wantOptions := []schema.Option{
		{Value: "free", Label: "Free"},
		{Value: "pro", Label: "Pro"},
	}
	if diff := cmp.Diff(wantOptions, plan.Options); diff != "" {
		t.Fatalf("plan options mismatch (-want +got):\n%s", diff)
	}
}

func TestFromOpenAPI_UnknownOperation(t *testing.T) {
	_, err := schema.FromOpenAPI(context.Background(), []byte(signupSpec), "deletePerson")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestFromOpenAPI_MissingRequestBody(t *testing.T) {
	spec := `{
	  "openapi": "3.0.3",
	  "info": {"title": "People", "version": "1.0.0"},
	  "paths": {"/people": {"get": {"operationId": "listPeople", "responses": {"200": {"description": "ok"}}}}}
	}`

	_, err := schema.FromOpenAPI(context.Background(), []byte(spec), "listPeople")
	if err == nil || !strings.Contains(err.Error(), "request body") {
		t.Fatalf("expected request body error, got %v", err)
	}
}
