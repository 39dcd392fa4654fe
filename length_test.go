package friendlyerrors

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	r := Length(0, 100)
	err := r.Validate("Richard-Breslau-Straßé 2")
	require.Nil(t, err)
}

func TestLength_TooLong_Code(t *testing.T) {
	r := Length(2, 5)
	err := r.Validate("toolongvalue")
	require.NotNil(t, err)

	var ve validation.Error
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "validation_length_too_long", ve.Code())
}

func TestLength_TooShort_Code(t *testing.T) {
	r := Length(3, 10)
	err := r.Validate("ab")
	require.NotNil(t, err)

	var ve validation.Error
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "validation_length_too_short", ve.Code())
}

func TestLength_CountsRunes(t *testing.T) {
	// 6 runes, 8 bytes
	r := Length(0, 6)
	require.Nil(t, r.Validate("Straßé"))

	r = Length(0, 5)
	require.NotNil(t, r.Validate("Straßé"))
}

func TestLength_SkipsEmpty(t *testing.T) {
	r := Length(3, 10)
	require.Nil(t, r.Validate(""))
}
