package friendlyerrors

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
)

type (
	// RuleFunc is a function type that validates a value and returns an error if invalid.
	RuleFunc func(value any) error

	// Rule is the interface that all validation rules must implement.
	Rule interface {
		Validate(value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// FieldRules binds a struct field pointer to its validation rules.
	FieldRules struct {
		fieldPtr any
		tag      string
		rules    []Rule
	}

	// Ruler is implemented by structs that declare per-field validation rules.
	Ruler interface {
		Rules() []*FieldRules
	}

	// ContextRuler is like Ruler but receives a context, for rules that
	// depend on request-scoped data.
	ContextRuler interface {
		Rules(ctx context.Context) []*FieldRules
	}

	// ValueRuler is implemented by non-struct types (e.g. type PaymentMethod string)
	// that carry their own validation rules. The returned rules are automatically
	// applied during both validation and OpenAPI schema generation wherever the
	// type appears as a struct field.
	//
	//	type PaymentMethod string
	//
	//	const (
	//	    PaymentACH  PaymentMethod = "ach"
	//	    PaymentCC   PaymentMethod = "cc"
	//	)
	//
	//	func (p PaymentMethod) ValueRules() []Rule {
	//	    return []Rule{In(PaymentACH, PaymentCC)}
	//	}
	ValueRuler interface {
		ValueRules() []Rule
	}

	// ObjectValidator is implemented by Ruler types that need a whole-object
	// validation step. ValidateObject runs only after every field rule has
	// passed. Returning a plain error records a non-field failure; returning
	// [FieldMessages] or a [ValidationErrors] map attributes each entry to
	// its field; returning [Failures] records pre-coded failures built with
	// [FieldFailure] and [Failure].
	ObjectValidator interface {
		ValidateObject() error
	}

	// ContextObjectValidator is like ObjectValidator but receives a context.
	ContextObjectValidator interface {
		ValidateObject(ctx context.Context) error
	}

	// CodeOverrider is implemented by Ruler types that register explicit
	// friendly codes per field name. A registered field bypasses the default
	// code lookup entirely; the value may be numeric or a string code and is
	// emitted in the report as given.
	//
	//	func (s *Snippet) FieldCodes() map[string]any {
	//	    return map[string]any{"comment": 5000, "title": "incorrect_title"}
	//	}
	CodeOverrider interface {
		FieldCodes() map[string]any
	}

	// NonFieldCoder is implemented by Ruler types that map whole-object
	// failure messages to friendly codes.
	NonFieldCoder interface {
		NonFieldCodes() map[string]any
	}

	// FieldTyper is implemented by rules that refine the field type used for
	// code lookup beyond what the Go type implies: an [In] rule marks a field
	// as a choice, a [Date] rule as a datetime, and so on.
	FieldTyper interface {
		FieldType() FieldType
	}
)
