// Package is provides format validation rules backed by govalidator.
// Each rule classifies its field for code lookup, so an invalid email
// resolves through the email row of the code table rather than the
// generic string row.
package is

import (
	"regexp"

	"github.com/asaskevich/govalidator"
	fe "github.com/bd808/friendlyerrors"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Email validates an email address.
	Email = Rule{
		check:  govalidator.IsEmail,
		err:    validation.NewError("validation_is_email", "must be a valid email address"),
		ftype:  fe.TypeEmail,
		format: "email",
	}
	// URL validates an absolute URL.
	URL = Rule{
		check:  govalidator.IsURL,
		err:    validation.NewError("validation_is_url", "must be a valid URL"),
		ftype:  fe.TypeURL,
		format: "uri",
	}
	// UUID validates a UUID in canonical form.
	UUID = Rule{
		check:  govalidator.IsUUID,
		err:    validation.NewError("validation_is_uuid", "must be a valid UUID"),
		ftype:  fe.TypeUUID,
		format: "uuid",
	}
	// IP validates an IPv4 or IPv6 address.
	IP = Rule{
		check:  govalidator.IsIP,
		err:    validation.NewError("validation_is_ip", "must be a valid IP address"),
		ftype:  fe.TypeIP,
		format: "ip",
	}
	// IPv4 validates an IPv4 address.
	IPv4 = Rule{
		check:  govalidator.IsIPv4,
		err:    validation.NewError("validation_is_ipv4", "must be a valid IPv4 address"),
		ftype:  fe.TypeIP,
		format: "ipv4",
	}
	// IPv6 validates an IPv6 address.
	IPv6 = Rule{
		check:  govalidator.IsIPv6,
		err:    validation.NewError("validation_is_ipv6", "must be a valid IPv6 address"),
		ftype:  fe.TypeIP,
		format: "ipv6",
	}
	// Alphanumeric validates a string of English letters and digits.
	Alphanumeric = Rule{
		check: govalidator.IsAlphanumeric,
		err:   validation.NewError("validation_is_alphanumeric", "must contain English letters and digits only"),
		ftype: fe.TypeString,
	}
	// Slug validates a string of letters, digits, hyphens, and underscores.
	Slug = Rule{
		check: slugRegexp.MatchString,
		err:   validation.NewError("validation_is_slug", "must contain only letters, numbers, underscores or hyphens"),
		ftype: fe.TypeSlug,
	}
)

var slugRegexp = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// Rule is a format check over a string value. Empty values are skipped so
// rules compose with Required.
type Rule struct {
	check  func(string) bool
	err    validation.Error
	ftype  fe.FieldType
	format string
}

// Validate checks the value's format.
func (r Rule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}
	s, err := validation.EnsureString(value)
	if err != nil {
		return err
	}
	if !r.check(s) {
		return r.err
	}
	return nil
}

// Error returns a copy of the rule with a custom error message.
// The failure code is unchanged.
func (r Rule) Error(message string) Rule {
	r.err = r.err.SetMessage(message)
	return r
}

// FieldType classifies the field for code lookup.
func (r Rule) FieldType() fe.FieldType {
	return r.ftype
}

// Describe implements [friendlyerrors.Rule] by recording the schema format.
func (r Rule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.format != "" {
		ref.Value.Format = r.format
	}
	return nil
}
