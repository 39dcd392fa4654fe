package friendlyerrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	minTests := []struct {
		min         float64
		value       any
		expectError bool
	}{
		{min: 0, value: 1.0, expectError: false},
		{min: 0, value: 1, expectError: true}, // 1 is an int not a float
		{min: 0, value: "1", expectError: false},
		{min: 0, value: "-1", expectError: true},
		{min: 0, value: "abc", expectError: true},
		{min: 0, value: nil, expectError: false}, // Skips empty
		{min: 0, value: []int{1}, expectError: true},
		{min: 0, value: json.Number("1"), expectError: false},
	}
	for _, tt := range minTests {
		t.Run(fmt.Sprintf("min:%v,v:%d", tt.min, tt.value), func(t *testing.T) {
			r := Min(tt.min)
			err := r.Validate(tt.value)
			if tt.expectError {
				require.NotNil(t, err)
			} else {
				require.Nil(t, err)
			}
		})
	}

	maxTests := []struct {
		max         float64
		value       any
		expectError bool
	}{
		{max: 2, value: "2", expectError: false},
		{max: 2, value: "3", expectError: true},
		{max: 2, value: "1", expectError: false},
		{max: 5.5, value: "5.6", expectError: true},
		{max: 5.5, value: "5.4", expectError: false},
		{max: 5.5, value: "5.5", expectError: false},
	}
	for _, tt := range maxTests {
		t.Run(fmt.Sprintf("max:%v,v:%d", tt.max, tt.value), func(t *testing.T) {
			r := Max(tt.max)
			err := r.Validate(tt.value)
			if tt.expectError {
				require.NotNil(t, err)
			} else {
				require.Nil(t, err)
			}
		})
	}
}

func TestMinMax_NonNumericString_Code(t *testing.T) {
	err := Min(0.0).Validate("abc")
	require.NotNil(t, err)

	var ve validation.Error
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "invalid", ve.Code())
}

func TestMinMax_NamedStringType(t *testing.T) {
	type amount string

	require.NotPanics(t, func() {
		err := Min(1).Validate(amount("abc"))
		require.NotNil(t, err)

		var ve validation.Error
		require.True(t, errors.As(err, &ve))
		require.Equal(t, "invalid", ve.Code())
	})

	require.Nil(t, Min(1).Validate(amount("2")))
	require.NotNil(t, Max(5.5).Validate(amount("5.6")))
}

func TestMinMax_NativeCodes(t *testing.T) {
	err := Min(5).Validate(3)
	require.NotNil(t, err)
	var ve validation.Error
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "validation_min_greater_equal_than_required", ve.Code())

	err = Max(5).Validate(7)
	require.NotNil(t, err)
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "validation_max_less_equal_than_required", ve.Code())
}
