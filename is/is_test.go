package is_test

import (
	"testing"

	fe "github.com/bd808/friendlyerrors"
	"github.com/bd808/friendlyerrors/is"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules(t *testing.T) {
	tests := []struct {
		name    string
		rule    is.Rule
		valid   []string
		invalid []string
	}{
		{
			name:    "Email",
			rule:    is.Email,
			valid:   []string{"user@example.com", "first.last@sub.domain.org"},
			invalid: []string{"not-an-email", "user@", "@example.com"},
		},
		{
			name:    "URL",
			rule:    is.URL,
			valid:   []string{"https://example.com", "http://example.com/path?q=1"},
			invalid: []string{"://missing-scheme", "http//example.com"},
		},
		{
			name:    "UUID",
			rule:    is.UUID,
			valid:   []string{"6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
			invalid: []string{"6ba7b810", "not-a-uuid"},
		},
		{
			name:    "IP",
			rule:    is.IP,
			valid:   []string{"192.168.0.1", "2001:db8::1"},
			invalid: []string{"999.999.999.999", "nope"},
		},
		{
			name:    "IPv4",
			rule:    is.IPv4,
			valid:   []string{"10.0.0.1"},
			invalid: []string{"2001:db8::1", "256.1.1.1"},
		},
		{
			name:    "IPv6",
			rule:    is.IPv6,
			valid:   []string{"2001:db8::1", "::1"},
			invalid: []string{"10.0.0.1", "zz::1"},
		},
		{
			name:    "Alphanumeric",
			rule:    is.Alphanumeric,
			valid:   []string{"abc123", "XYZ"},
			invalid: []string{"has space", "with-hyphen"},
		},
		{
			name:    "Slug",
			rule:    is.Slug,
			valid:   []string{"my-slug_01", "simple"},
			invalid: []string{"has space", "bad/slug"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, val := range tt.valid {
				assert.NoError(t, tt.rule.Validate(val), "expected %q to pass", val)
			}
			for _, val := range tt.invalid {
				assert.Error(t, tt.rule.Validate(val), "expected %q to fail", val)
			}
		})
	}
}

func TestRule_SkipsEmpty(t *testing.T) {
	assert.NoError(t, is.Email.Validate(""))
	assert.NoError(t, is.URL.Validate((*string)(nil)))
}

func TestRule_CustomMessage_KeepsCode(t *testing.T) {
	rule := is.Email.Error("give us a real address")
	err := rule.Validate("nope")
	require.Error(t, err)
	assert.Equal(t, "give us a real address", err.Error())

	var verr validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "validation_is_email", verr.Code())

	// The package-level rule is untouched.
	err = is.Email.Validate("nope")
	require.Error(t, err)
	assert.Equal(t, "must be a valid email address", err.Error())
}

func TestRule_FieldType(t *testing.T) {
	assert.Equal(t, fe.TypeEmail, is.Email.FieldType())
	assert.Equal(t, fe.TypeURL, is.URL.FieldType())
	assert.Equal(t, fe.TypeUUID, is.UUID.FieldType())
	assert.Equal(t, fe.TypeIP, is.IP.FieldType())
	assert.Equal(t, fe.TypeIP, is.IPv4.FieldType())
	assert.Equal(t, fe.TypeIP, is.IPv6.FieldType())
	assert.Equal(t, fe.TypeString, is.Alphanumeric.FieldType())
	assert.Equal(t, fe.TypeSlug, is.Slug.FieldType())
}

func TestRule_Describe_SetsFormat(t *testing.T) {
	ref := &openapi3.SchemaRef{Value: &openapi3.Schema{}}
	require.NoError(t, is.Email.Describe("email", ref.Value, ref))
	assert.Equal(t, "email", ref.Value.Format)

	ref = &openapi3.SchemaRef{Value: &openapi3.Schema{}}
	require.NoError(t, is.Slug.Describe("slug", ref.Value, ref))
	assert.Empty(t, ref.Value.Format)
}
