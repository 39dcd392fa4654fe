package friendlyerrors

// Envelope constants. Every report carries the same top-level code and
// message; the per-record codes identify the individual failures.
const (
	ValidationFailedCode    = 1000
	ValidationFailedMessage = "Validation Failed"

	// DefaultFieldCode is the generic fallback when a field failure matches
	// no table entry.
	DefaultFieldCode = 1001

	// DefaultNonFieldCode is the fallback for whole-object failures.
	DefaultNonFieldCode = 4000
)

// FieldType classifies a struct field for code lookup. The base type is
// derived from the field's Go type; rules implementing [FieldTyper] refine
// it (see [In], [Date], [Decimal] and the is sub-package).
type FieldType string

const (
	TypeBoolean  FieldType = "boolean"
	TypeString   FieldType = "string"
	TypeInteger  FieldType = "integer"
	TypeFloat    FieldType = "float"
	TypeDecimal  FieldType = "decimal"
	TypeChoice   FieldType = "choice"
	TypeDateTime FieldType = "datetime"
	TypeEmail    FieldType = "email"
	TypeURL      FieldType = "url"
	TypeUUID     FieldType = "uuid"
	TypeIP       FieldType = "ip"
	TypeSlug     FieldType = "slug"
	TypeSlice    FieldType = "slice"
	TypeMap      FieldType = "map"
	TypeObject   FieldType = "object"
)

// DefaultFieldCodes returns the built-in two-level code table keyed by
// (field type, error key). Callers get a fresh copy and may mutate it
// before passing it to [WithFieldCodes].
func DefaultFieldCodes() map[FieldType]map[string]int {
	return map[FieldType]map[string]int{
		TypeBoolean: {
			"required": 2001,
			"invalid":  2011,
			"null":     2021,
		},
		TypeChoice: {
			"required":       2002,
			"invalid_choice": 2081,
			"invalid":        2081,
			"null":           2022,
		},
		TypeString: {
			"required":       2003,
			"invalid":        2013,
			"null":           2023,
			"blank":          2031,
			"max_length":     2041,
			"min_length":     2051,
			"invalid_length": 2043,
		},
		TypeEmail: {
			"required":   2004,
			"invalid":    2061,
			"null":       2024,
			"blank":      2032,
			"max_length": 2042,
			"min_length": 2052,
		},
		TypeURL: {
			"required":   2005,
			"invalid":    2062,
			"null":       2025,
			"blank":      2033,
			"max_length": 2044,
			"min_length": 2053,
		},
		TypeUUID: {
			"required": 2006,
			"invalid":  2063,
			"null":     2026,
		},
		TypeIP: {
			"required": 2007,
			"invalid":  2064,
			"null":     2027,
		},
		TypeSlug: {
			"required": 2008,
			"invalid":  2065,
			"null":     2028,
			"blank":    2034,
		},
		TypeInteger: {
			"required":  2009,
			"invalid":   2014,
			"null":      2029,
			"max_value": 2071,
			"min_value": 2072,
		},
		TypeFloat: {
			"required":  2012,
			"invalid":   2015,
			"null":      2035,
			"max_value": 2073,
			"min_value": 2074,
		},
		TypeDecimal: {
			"required":           2016,
			"invalid":            2017,
			"null":               2036,
			"max_value":          2075,
			"min_value":          2076,
			"max_digits":         2091,
			"max_decimal_places": 2092,
		},
		TypeDateTime: {
			"required":          2018,
			"invalid":           2101,
			"null":              2037,
			"date_out_of_range": 2102,
		},
		TypeSlice: {
			"required":   2019,
			"invalid":    2111,
			"null":       2038,
			"empty":      2112,
			"max_length": 2045,
			"min_length": 2054,
		},
		TypeMap: {
			"required": 2046,
			"invalid":  2113,
			"null":     2047,
		},
		TypeObject: {
			"required": 2048,
			"invalid":  2114,
			"null":     2039,
		},
	}
}

// DefaultRuleCodes returns the built-in field-type-independent code table
// consulted when the type-keyed table has no entry. These cover rules whose
// meaning does not depend on the field's type.
func DefaultRuleCodes() map[string]int {
	return map[string]int{
		"unique":              3001,
		"key_not_allowed":     3002,
		"alphabetic_required": 3003,
		"credit_card_number":  3004,
	}
}

// DefaultNonFieldCodes returns the built-in code table for whole-object
// failures, keyed by error key.
func DefaultNonFieldCodes() map[string]int {
	return map[string]int{
		"invalid":  4000,
		"required": 4001,
	}
}

// errorKeys maps the validation engine's native error codes to the short
// keys the code tables use. Codes absent from this map are used as lookup
// keys verbatim, so custom rules may emit either form.
var errorKeys = map[string]string{
	"validation_required":                        "required",
	"validation_nil_or_not_empty_required":       "required",
	"validation_not_nil_required":                "null",
	"validation_nil":                             "null",
	"validation_empty":                           "empty",
	"validation_in_invalid":                      "invalid_choice",
	"validation_length_too_long":                 "max_length",
	"validation_length_too_short":                "min_length",
	"validation_length_out_of_range":             "max_length",
	"validation_length_invalid":                  "invalid_length",
	"validation_length_empty_required":           "empty",
	"validation_min_greater_equal_than_required": "min_value",
	"validation_min_greater_than_required":       "min_value",
	"validation_max_less_equal_than_required":    "max_value",
	"validation_max_less_than_required":          "max_value",
	"validation_date_invalid":                    "invalid",
	"validation_date_out_of_range":               "date_out_of_range",
	"validation_match_invalid":                   "invalid",
	"validation_multiple_of_invalid":             "invalid",
	"validation_decimal_invalid":                 "invalid",
	"validation_decimal_max_digits":              "max_digits",
	"validation_decimal_max_places":              "max_decimal_places",
	"validation_unique_invalid":                  "unique",
	"validation_key_not_allowed":                 "key_not_allowed",
	"validation_has_alphabetic":                  "alphabetic_required",
	"validation_credit_card_number":              "credit_card_number",
	"validation_is_email":                        "invalid",
	"validation_is_url":                          "invalid",
	"validation_is_uuid":                         "invalid",
	"validation_is_ip":                           "invalid",
	"validation_is_ipv4":                         "invalid",
	"validation_is_ipv6":                         "invalid",
	"validation_is_slug":                         "invalid",
	"validation_is_alphanumeric":                 "invalid",
}

// errorKey normalizes a native error code to a table lookup key.
// An empty code means the error carried no code at all and is treated as
// a generic invalid value.
func errorKey(code string) string {
	if code == "" {
		return "invalid"
	}
	if k, ok := errorKeys[code]; ok {
		return k
	}
	return code
}
