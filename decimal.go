package friendlyerrors

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Decimal rule failure errors. The codes resolve through the decimal row of
// the field code table ("invalid", "max_digits", "max_decimal_places").
var (
	ErrDecimalInvalid = validation.NewError("validation_decimal_invalid",
		"must be a valid decimal number")
	ErrDecimalMaxDigits = validation.NewError("validation_decimal_max_digits",
		"must have no more than {{.max_digits}} digits in total")
	ErrDecimalMaxPlaces = validation.NewError("validation_decimal_max_places",
		"must have no more than {{.max_places}} decimal places")
)

// DecimalRule validates a fixed-precision decimal carried as a string,
// json.Number, or float. Use [Decimal] to create one.
type DecimalRule struct {
	maxDigits int
	maxPlaces int
}

// Decimal returns a validation rule constraining the total digit count and
// the number of decimal places of a numeric value. A field carrying a
// Decimal rule is treated as a decimal field for code lookup.
func Decimal(maxDigits, maxPlaces int) *DecimalRule {
	return &DecimalRule{maxDigits: maxDigits, maxPlaces: maxPlaces}
}

// FieldType marks the field as a decimal for code lookup.
func (r *DecimalRule) FieldType() FieldType {
	return TypeDecimal
}

// Validate checks digit and decimal place limits. Empty values are skipped
// so the rule composes with Required.
func (r *DecimalRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case json.Number:
		s = v.String()
	case float32:
		s = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprintf("%v", value)
	}

	whole, places, ok := splitDecimal(s)
	if !ok {
		return ErrDecimalInvalid
	}
	if r.maxPlaces > 0 && len(places) > r.maxPlaces {
		return ErrDecimalMaxPlaces.SetParams(map[string]any{"max_places": r.maxPlaces})
	}
	if r.maxDigits > 0 && len(whole)+len(places) > r.maxDigits {
		return ErrDecimalMaxDigits.SetParams(map[string]any{"max_digits": r.maxDigits})
	}
	return nil
}

// splitDecimal parses s into whole and fractional digit strings.
// Leading zeros in the whole part do not count toward the digit limit.
func splitDecimal(s string) (whole, places string, ok bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	if s == "" {
		return "", "", false
	}
	whole, places, _ = strings.Cut(s, ".")
	if whole == "" && places == "" {
		return "", "", false
	}
	for _, part := range []string{whole, places} {
		for _, c := range part {
			if c < '0' || c > '9' {
				return "", "", false
			}
		}
	}
	whole = strings.TrimLeft(whole, "0")
	return whole, places, true
}

// Describe implements [Rule] by recording the precision constraints.
func (r *DecimalRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += fmt.Sprintf("decimal with at most %d digits and %d decimal places", r.maxDigits, r.maxPlaces)
	return nil
}
