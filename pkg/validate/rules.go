package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-formstate/pkg/schema"
	"github.com/goliatone/go-formstate/pkg/state"
)

// Rule kinds mirror the constraint vocabulary carried by schema documents.
// Thresholds travel as string params to keep serialised rule sets stable.
const (
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RulePattern   = "pattern"
	RuleOneOf     = "oneOf"
)

// Rule is a single declarative constraint applied to a field's submitted
// value. Use the constructors below rather than building literals.
type Rule struct {
	Kind   string
	Params map[string]string
}

// MinLength requires at least n characters.
func MinLength(n int) Rule {
	return Rule{Kind: RuleMinLength, Params: map[string]string{"value": strconv.Itoa(n)}}
}

// MaxLength allows at most n characters.
func MaxLength(n int) Rule {
	return Rule{Kind: RuleMaxLength, Params: map[string]string{"value": strconv.Itoa(n)}}
}

// Pattern requires the value to match the regular expression. The optional
// message overrides the generic "is invalid".
func Pattern(expr, message string) Rule {
	params := map[string]string{"pattern": expr}
	if message = strings.TrimSpace(message); message != "" {
		params["message"] = message
	}
	return Rule{Kind: RulePattern, Params: params}
}

// OneOf requires the value to be one of the listed entries.
func OneOf(values ...string) Rule {
	return Rule{Kind: RuleOneOf, Params: map[string]string{"values": strings.Join(values, ",")}}
}

// RuleSet attaches rules to field names.
type RuleSet map[string][]Rule

// Submission validates one submission attempt against the schema and rule
// set, returning the snapshot a renderer consumes: every submitted value is
// captured (valid or not) and every violation becomes a per-field message.
// The only error condition is a malformed rule set (for example an
// uncompilable pattern); user input never causes an error, it causes
// messages.
func Submission(values map[string]any, s schema.Schema, rules RuleSet) (*state.Snapshot, error) {
	builder := state.NewBuilder().SetAll(values)
	submitted := builder.Build()

	for _, descriptor := range s.Fields {
		field := schema.NormalizeField(descriptor)
		value := submitted.Value(field.Name)

		if strings.TrimSpace(value) == "" {
			if field.Required {
				builder.AddError(field.Name, "can't be blank")
			}
			// Remaining constraints only apply to present values.
			continue
		}

		checkType(builder, field, value)

		for _, rule := range rules[field.Name] {
			if err := checkRule(builder, field.Name, value, rule); err != nil {
				return nil, err
			}
		}
	}

	return builder.Build(), nil
}

func checkType(builder *state.Builder, field schema.Field, value string) {
	switch field.Type {
	case schema.FieldTypeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			builder.AddError(field.Name, "is not a number")
		}
	case schema.FieldTypeSelect:
		if len(field.Options) == 0 {
			return
		}
		for _, option := range field.Options {
			if option.Value == value {
				return
			}
		}
		builder.AddError(field.Name, "is not included in the list")
	}
}

func checkRule(builder *state.Builder, field, value string, rule Rule) error {
	switch rule.Kind {
	case RuleMinLength:
		min, err := ruleInt(rule, "value")
		if err != nil {
			return fmt.Errorf("validate: field %q: %w", field, err)
		}
		if len([]rune(value)) < min {
			builder.AddError(field, fmt.Sprintf("is too short (minimum is %d characters)", min))
		}
	case RuleMaxLength:
		max, err := ruleInt(rule, "value")
		if err != nil {
			return fmt.Errorf("validate: field %q: %w", field, err)
		}
		if len([]rune(value)) > max {
			builder.AddError(field, fmt.Sprintf("is too long (maximum is %d characters)", max))
		}
	case RulePattern:
		expr := rule.Params["pattern"]
		re, err := regexp.Compile(expr)
		if err != nil {
			return fmt.Errorf("validate: field %q: compile pattern %q: %w", field, expr, err)
		}
		if !re.MatchString(value) {
			message := rule.Params["message"]
			if message == "" {
				message = "is invalid"
			}
			builder.AddError(field, message)
		}
	case RuleOneOf:
		allowed := strings.Split(rule.Params["values"], ",")
		for _, entry := range allowed {
			if entry == value {
				return nil
			}
		}
		builder.AddError(field, "is not included in the list")
	default:
		return fmt.Errorf("validate: field %q: unknown rule kind %q", field, rule.Kind)
	}
	return nil
}

func ruleInt(rule Rule, key string) (int, error) {
	raw := rule.Params[key]
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("rule %s has malformed %s %q", rule.Kind, key, raw)
	}
	return value, nil
}
