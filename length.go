package friendlyerrors

import (
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type lengthRule struct {
	validation.LengthRule
	min, max int
}

// Length returns a validation rule that checks if a string's rune length is within the specified range.
func Length(lo, hi int) Rule {
	return &lengthRule{
		validation.RuneLength(lo, hi),
		lo,
		hi,
	}
}

// Validate reports which bound was violated. The engine collapses a
// two-sided range into a single out-of-range error; clients need distinct
// max_length and min_length codes, so the bound is re-checked here.
func (r *lengthRule) Validate(value any) error {
	err := r.LengthRule.Validate(value)
	if err == nil {
		return nil
	}

	v, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(v) {
		return err
	}
	var n int
	if s, ok := v.(string); ok {
		n = utf8.RuneCountInString(s)
	} else if l, lerr := validation.LengthOfValue(v); lerr == nil {
		n = l
	} else {
		return err
	}

	params := map[string]any{"min": r.min, "max": r.max}
	if r.max > 0 && n > r.max {
		return validation.ErrLengthTooLong.SetParams(params)
	}
	if r.min > 0 && n < r.min {
		return validation.ErrLengthTooShort.SetParams(params)
	}
	return err
}

func (r *lengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	fmin := float64(r.min)
	fmax := float64(r.max)
	ref.Value.Max = &fmax
	ref.Value.Min = &fmin
	return nil
}
