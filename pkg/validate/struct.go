package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/goliatone/go-formstate/pkg/state"
)

// StructValidator adapts go-playground/validator into the snapshot contract:
// validate a tagged struct, translate each violation into a human-readable
// message, and capture the submitted values so the form can be re-displayed.
type StructValidator struct {
	core  *validator.Validate
	trans ut.Translator
}

// NewStructValidator builds a validator with English default translations.
// Field names resolve through json tags so messages and snapshot keys line up
// with the schema's field names.
func NewStructValidator() (*StructValidator, error) {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, errors.New("validate: english translator unavailable")
	}

	core := validator.New()
	if err := en_translations.RegisterDefaultTranslations(core, trans); err != nil {
		return nil, fmt.Errorf("validate: register translations: %w", err)
	}
	core.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &StructValidator{core: core, trans: trans}, nil
}

// Snapshot validates the struct and returns the submission snapshot: field
// values keyed by json tag plus one translated message per violation. A valid
// struct yields a snapshot with values and no messages. The error return
// covers misuse (non-struct input), not validation failures.
func (v *StructValidator) Snapshot(subject any) (*state.Snapshot, error) {
	builder := state.NewBuilder()
	if err := captureValues(builder, subject); err != nil {
		return nil, err
	}

	err := v.core.Struct(subject)
	if err == nil {
		return builder.Build(), nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return nil, fmt.Errorf("validate: struct validation: %w", err)
	}

	for _, violation := range violations {
		field := violation.Field()
		if field == "" {
			continue
		}
		builder.AddError(field, strings.TrimSpace(trimFieldPrefix(violation.Translate(v.trans), field)))
	}

	return builder.Build(), nil
}

// trimFieldPrefix strips the leading field name the default translations
// include ("email must be a valid email address" → "must be a valid email
// address") so messages compose with labels the way templates expect.
func trimFieldPrefix(message, field string) string {
	if rest, ok := strings.CutPrefix(message, field+" "); ok {
		return rest
	}
	return message
}

func captureValues(builder *state.Builder, subject any) error {
	value := reflect.ValueOf(subject)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return errors.New("validate: subject is nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return fmt.Errorf("validate: expected struct, got %T", subject)
	}

	structType := value.Type()
	for i := 0; i < structType.NumField(); i++ {
		fieldType := structType.Field(i)
		if !fieldType.IsExported() {
			continue
		}
		name := strings.SplitN(fieldType.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		field := value.Field(i)
		for field.Kind() == reflect.Pointer {
			if field.IsNil() {
				field = reflect.Value{}
				break
			}
			field = field.Elem()
		}
		if !field.IsValid() {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			builder.Set(name, field.String())
		case reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			builder.Set(name, field.Interface())
		}
	}
	return nil
}
