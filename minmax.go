package friendlyerrors

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type thresholdRule struct {
	validation.ThresholdRule
	threshold any
	min       bool
}

// Min returns a validation rule that checks if a value is greater than or equal to the specified minimum.
// Failures translate to the "min_value" code of the field's type.
func Min(threshold any) Rule {
	return thresholdRule{
		validation.Min(threshold),
		threshold,
		true,
	}
}

// Max returns a validation rule that checks if a value is less than or equal to the specified maximum.
// Failures translate to the "max_value" code of the field's type.
func Max(threshold any) Rule {
	return thresholdRule{
		validation.Max(threshold),
		threshold,
		false,
	}
}

func (r thresholdRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Type.Is(openapi3.TypeString) {
		ref.Value.Format = fmt.Sprintf("%T", r.threshold)
	}
	f, err := getFloat(r.threshold)
	if err != nil {
		return err
	}
	if r.min {
		ref.Value.Min = &f
	} else {
		ref.Value.Max = &f
	}
	return nil
}

var floatType = reflect.TypeOf(float64(0))

func getFloat(unk any) (float64, error) {
	v := reflect.ValueOf(unk)
	v = reflect.Indirect(v)
	if !v.Type().ConvertibleTo(floatType) {
		return 0, fmt.Errorf("cannot convert %v to float64", v.Type())
	}
	fv := v.Convert(floatType)
	return fv.Float(), nil
}

// errNotNumeric is returned when a string value cannot be parsed as the
// threshold's numeric type. It translates through the "invalid" key.
var errNotNumeric = validation.NewError("invalid", "must be a valid number")

// Validate checks if the given value is valid or not.
func (r thresholdRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}

	if reflect.ValueOf(value).Kind() != reflect.String {
		return r.ThresholdRule.Validate(value)
	}

	// Handle json.Number and other types
	var s string
	if v, ok := value.(fmt.Stringer); ok {
		s = v.String()
	} else {
		// Named string kinds are not assertable to string.
		s = reflect.ValueOf(value).String()
	}

	var err error
	rv := reflect.ValueOf(r.threshold)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return errNotNumeric
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		value, err = strconv.ParseUint(s, 10, 64)
		if err != nil {
			return errNotNumeric
		}
	case reflect.Float32, reflect.Float64:
		value, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return errNotNumeric
		}
	}

	return r.ThresholdRule.Validate(value)
}
