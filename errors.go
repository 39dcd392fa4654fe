package friendlyerrors

import (
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationErrors is a map of field names to their validation errors.
// It is an alias for [validation.Errors] from ozzo-validation and implements
// the error interface with a JSON-friendly string representation.
type ValidationErrors = validation.Errors

// NonFieldKey is the sentinel key whole-object failures are recorded under
// in the native error tree. Records translated from it carry a null field.
const NonFieldKey = "non_field_errors"

// registered is a failure created by FieldFailure or Failure. The translator
// resolves its code from the key through the normal tables unless an explicit
// code was given.
type registered struct {
	field   string
	key     string
	code    any
	message string
}

func (r *registered) Error() string { return r.message }

// FieldFailure returns an error attributing message to the named field under
// the given error key (e.g. "invalid_choice", "blank"). The friendly code is
// resolved through the field's type table, exactly as if the field's own
// rules had failed with that key. Use inside [ObjectValidator.ValidateObject]
// to register failures discovered during cross-field checks.
func FieldFailure(field, key, message string) error {
	return &registered{field: field, key: key, message: message}
}

// Failure returns a whole-object error with an explicit friendly code.
// The code may be numeric or a string and is emitted in the report as given.
func Failure(code any, message string) error {
	return &registered{code: code, message: message}
}

// Failures combines multiple registered errors. Each entry flattens to its
// own record in the report.
type Failures []error

func (f Failures) Error() string {
	msgs := make([]string, len(f))
	for i, err := range f {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// FieldMessages is a whole-object failure payload mapping field names to
// messages. When returned from ValidateObject, each entry is unpacked into
// its own flattened record, with codes resolved override-first and then
// through the field's type table.
type FieldMessages map[string]string

func (m FieldMessages) Error() string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, m[k])
	}
	return strings.Join(parts, "; ")
}

// asErrors converts the payload into the engine's native error tree so the
// translator sees ordinary uncoded field errors.
func (m FieldMessages) asErrors() validation.Errors {
	errs := validation.Errors{}
	for field, msg := range m {
		errs[field] = validation.NewError("", msg)
	}
	return errs
}
