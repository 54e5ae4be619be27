package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// FromOpenAPI derives a form Schema from the request body of the OpenAPI
// operation identified by operationID. JSON and form-encoded media types are
// preferred; property order is alphabetical to keep output deterministic
// since OpenAPI objects carry no declaration order. String formats map onto
// display types ("email", "password" — the latter is never echoed back),
// enums become select fields, booleans become checkboxes.
func FromOpenAPI(ctx context.Context, document []byte, operationID string) (Schema, error) {
	if len(document) == 0 {
		return Schema{}, errors.New("schema: openapi document is empty")
	}
	operationID = strings.TrimSpace(operationID)
	if operationID == "" {
		return Schema{}, errors.New("schema: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(document)
	if err != nil {
		return Schema{}, fmt.Errorf("schema: load openapi document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return Schema{}, fmt.Errorf("schema: operation %q not found", operationID)
	}

	body := requestBodySchema(operation.RequestBody)
	if body == nil {
		return Schema{}, fmt.Errorf("schema: operation %q has no usable request body", operationID)
	}

	out := Schema{Name: operationID, Title: strings.TrimSpace(operation.Summary)}
	out.Fields = fieldsFromObject(body)
	return out.Normalize(), nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete, item.Patch,
		} {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func requestBodySchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func fieldsFromObject(object *openapi3.Schema) []Field {
	if object == nil || len(object.Properties) == 0 {
		return nil
	}

	requiredSet := make(map[string]struct{}, len(object.Required))
	for _, name := range object.Required {
		requiredSet[name] = struct{}{}
	}

	names := make([]string, 0, len(object.Properties))
	for name := range object.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]Field, 0, len(names))
	for _, name := range names {
		ref := object.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		_, required := requiredSet[name]
		fields = append(fields, fieldFromProperty(name, ref.Value, required))
	}
	return fields
}

func fieldFromProperty(name string, property *openapi3.Schema, required bool) Field {
	field := Field{
		Name:     name,
		Help:     strings.TrimSpace(property.Description),
		Required: required,
		Type:     displayType(property),
	}

	if len(property.Enum) > 0 {
		field.Type = FieldTypeSelect
		field.Options = make([]Option, 0, len(property.Enum))
		for _, entry := range property.Enum {
			value := fmt.Sprint(entry)
			field.Options = append(field.Options, Option{Value: value, Label: DefaultLabeler(value)})
		}
	}

	return field
}

func displayType(property *openapi3.Schema) FieldType {
	switch firstType(property.Type) {
	case "boolean":
		return FieldTypeCheckbox
	case "integer", "number":
		return FieldTypeNumber
	case "string", "":
		switch property.Format {
		case "email":
			return FieldTypeEmail
		case "password":
			return FieldTypePassword
		default:
			return FieldTypeText
		}
	default:
		return FieldTypeText
	}
}

func firstType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
