package friendlyerrors

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Report is the normalized validation failure envelope: a summary message,
// an overall failure code, and one flat record per individual failure.
type Report struct {
	Message string       `json:"message"`
	Code    int          `json:"code"`
	Errors  []FieldError `json:"errors"`
}

// FieldError is one flattened validation failure. Field is nil for
// whole-object failures. Code is numeric when resolved from the tables and
// may be a string when a serializer registered its own code.
type FieldError struct {
	Field   *string `json:"field"`
	Code    any     `json:"code"`
	Message string  `json:"message"`
}

// Translator resolves friendly codes for validation failures and flattens
// the engine's nested error tree into a Report. The zero value is not
// usable; construct one with New.
type Translator struct {
	fieldCodes    map[FieldType]map[string]int
	ruleCodes     map[string]int
	nonFieldCodes map[string]int
	failedCode    int
	failedMessage string
}

// Option configures a Translator.
type Option func(*Translator)

// WithFieldCodes merges rows into the (field type, error key) table.
// Entries replace existing ones key by key.
func WithFieldCodes(table map[FieldType]map[string]int) Option {
	return func(t *Translator) {
		for ft, row := range table {
			if t.fieldCodes[ft] == nil {
				t.fieldCodes[ft] = map[string]int{}
			}
			for k, c := range row {
				t.fieldCodes[ft][k] = c
			}
		}
	}
}

// WithRuleCodes merges entries into the field-type-independent code table.
func WithRuleCodes(table map[string]int) Option {
	return func(t *Translator) {
		for k, c := range table {
			t.ruleCodes[k] = c
		}
	}
}

// WithNonFieldCodes merges entries into the whole-object code table.
func WithNonFieldCodes(table map[string]int) Option {
	return func(t *Translator) {
		for k, c := range table {
			t.nonFieldCodes[k] = c
		}
	}
}

// WithEnvelope replaces the top-level failure code and message.
func WithEnvelope(code int, message string) Option {
	return func(t *Translator) {
		t.failedCode = code
		t.failedMessage = message
	}
}

// New returns a Translator with the default code tables, modified by opts.
func New(opts ...Option) *Translator {
	t := &Translator{
		fieldCodes:    DefaultFieldCodes(),
		ruleCodes:     DefaultRuleCodes(),
		nonFieldCodes: DefaultNonFieldCodes(),
		failedCode:    ValidationFailedCode,
		failedMessage: ValidationFailedMessage,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// DefaultTranslator is used by Check, CheckCtx, and DecodeAndReport.
var DefaultTranslator = New()

// Check validates value and returns a Report describing the failures, or
// nil if value is valid.
func Check(value any) *Report {
	return DefaultTranslator.Report(value, Validate(value))
}

// CheckCtx is like Check but passes a context to context-aware rules and
// the object validation step.
func CheckCtx(ctx context.Context, value any) *Report {
	return DefaultTranslator.Report(value, ValidateCtx(ctx, value))
}

// Report translates err, as returned by Validate for value, into the flat
// envelope. A nil err yields a nil report. Errors that are not validation
// failures (including JSON decode errors) produce a single record.
func (t *Translator) Report(value any, err error) *Report {
	if err == nil {
		return nil
	}
	rep := &Report{Message: t.failedMessage, Code: t.failedCode}

	// JSON type mismatches carry the offending field; report them like a
	// field failure so clients see one consistent envelope.
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		ft, known := goFieldType(typeErr.Type)
		rep.Errors = append(rep.Errors, FieldError{
			Field:   &field,
			Code:    t.lookupFieldCode(ft, known, "invalid"),
			Message: "must be a valid " + typeErr.Type.String(),
		})
		return rep
	}

	overrides := fieldOverrides(value)
	nonFieldOv := nonFieldOverrides(value)
	t.flatten(rep, value, overrides, nonFieldOv, nil, err)
	return rep
}

func fieldOverrides(value any) map[string]any {
	if co, ok := value.(CodeOverrider); ok {
		return co.FieldCodes()
	}
	return nil
}

func nonFieldOverrides(value any) map[string]any {
	if nc, ok := value.(NonFieldCoder); ok {
		return nc.NonFieldCodes()
	}
	return nil
}

// flatten walks the native error tree depth-first, appending one record per
// leaf. Nested trees produce dotted field paths; the sentinel key at the
// top level routes to non-field handling.
func (t *Translator) flatten(rep *Report, root any, overrides, nonFieldOv map[string]any, path []string, err error) {
	switch e := err.(type) {
	case validation.Errors:
		for _, k := range sortedKeys(e) {
			if len(path) == 0 && k == NonFieldKey {
				t.nonField(rep, root, overrides, nonFieldOv, e[k])
				continue
			}
			next := append(append([]string{}, path...), k)
			t.flatten(rep, root, overrides, nonFieldOv, next, e[k])
		}
	case Failures:
		for _, sub := range e {
			t.flatten(rep, root, overrides, nonFieldOv, path, sub)
		}
	case *registered:
		if e.field != "" {
			rep.Errors = append(rep.Errors, t.registeredRecord(root, overrides, e))
		} else {
			t.nonField(rep, root, overrides, nonFieldOv, e)
		}
	default:
		if len(path) == 0 {
			t.nonField(rep, root, overrides, nonFieldOv, err)
			return
		}
		rep.Errors = append(rep.Errors, t.fieldRecord(root, overrides, path, err))
	}
}

// fieldRecord builds the record for a single field failure. Code precedence:
// serializer override, (field type, error key) table, rule table, generic
// fallback. A missing lookup key is never an error.
func (t *Translator) fieldRecord(root any, overrides map[string]any, path []string, err error) FieldError {
	field := strings.Join(path, ".")
	msg := errMessage(err)
	if c, ok := overrides[field]; ok {
		return FieldError{Field: &field, Code: c, Message: msg}
	}

	key := "invalid"
	if ve, ok := err.(validation.Error); ok {
		key = errorKey(ve.Code())
	}
	ft, known := fieldTypeFor(root, path)
	return FieldError{Field: &field, Code: t.lookupFieldCode(ft, known, key), Message: msg}
}

// registeredRecord resolves a failure registered with FieldFailure.
func (t *Translator) registeredRecord(root any, overrides map[string]any, e *registered) FieldError {
	field := e.field
	if c, ok := overrides[field]; ok {
		return FieldError{Field: &field, Code: c, Message: e.message}
	}
	if e.code != nil {
		return FieldError{Field: &field, Code: e.code, Message: e.message}
	}
	ft, known := fieldTypeFor(root, strings.Split(field, "."))
	return FieldError{Field: &field, Code: t.lookupFieldCode(ft, known, errorKey(e.key)), Message: e.message}
}

// nonField appends records for whole-object failures. The field is nil
// unless the payload attributes entries to fields, in which case each entry
// is unpacked into its own field record.
func (t *Translator) nonField(rep *Report, root any, overrides, nonFieldOv map[string]any, err error) {
	switch e := err.(type) {
	case Failures:
		for _, sub := range e {
			t.nonField(rep, root, overrides, nonFieldOv, sub)
		}
	case *registered:
		if e.field != "" {
			rep.Errors = append(rep.Errors, t.registeredRecord(root, overrides, e))
			return
		}
		code := e.code
		if c, ok := nonFieldOv[e.message]; ok {
			code = c
		}
		if code == nil {
			code = t.lookupNonFieldCode("invalid")
		}
		rep.Errors = append(rep.Errors, FieldError{Code: code, Message: e.message})
	case validation.Errors:
		// A per-field error mapping raised from the object step: unpack every
		// entry into its own record.
		for _, k := range sortedKeys(e) {
			t.flatten(rep, root, overrides, nonFieldOv, []string{k}, e[k])
		}
	default:
		msg := errMessage(err)
		var code any
		switch {
		case nonFieldOv[msg] != nil:
			code = nonFieldOv[msg]
		default:
			ve, ok := err.(validation.Error)
			if ok && ve.Code() != "" {
				key := errorKey(ve.Code())
				if c, found := t.nonFieldCodes[key]; found {
					code = c
				} else {
					// Custom code supplied with the error; emit as given.
					code = ve.Code()
				}
			} else {
				code = t.lookupNonFieldCode("invalid")
			}
		}
		rep.Errors = append(rep.Errors, FieldError{Code: code, Message: msg})
	}
}

func (t *Translator) lookupFieldCode(ft FieldType, known bool, key string) any {
	if known {
		if row, ok := t.fieldCodes[ft]; ok {
			if c, ok := row[key]; ok {
				return c
			}
		}
	}
	if c, ok := t.ruleCodes[key]; ok {
		return c
	}
	return DefaultFieldCode
}

func (t *Translator) lookupNonFieldCode(key string) any {
	if c, ok := t.nonFieldCodes[key]; ok {
		return c
	}
	return DefaultNonFieldCode
}

// errMessage renders the failure message, interpolating the engine's
// parameter templates when present.
func errMessage(err error) string {
	if ve, ok := err.(validation.Error); ok {
		return ve.Error()
	}
	return err.Error()
}

// sortedKeys returns the error tree's keys in the engine's canonical
// (sorted) order so record ordering is deterministic.
func sortedKeys(errs validation.Errors) []string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
