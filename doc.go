// Package friendlyerrors provides struct validation with flat,
// machine-consumable error reporting.
//
// Validation rules are declared by implementing [Ruler] on your structs:
//
//	func (s *Snippet) Rules() []*FieldRules {
//	    return []*FieldRules{
//	        Field(&s.Title, Required, Length(1, 10)),
//	        Field(&s.Language, Required, In("go", "python", "c++")),
//	    }
//	}
//
// [Check] validates a value and translates any failure into a [Report]:
// a flat list of {field, code, message} records instead of the nested
// error tree the validation engine produces natively. Codes are resolved
// through a two-level table keyed by field type and error key, with
// per-serializer overrides via [CodeOverrider] and a generic fallback
// when no table entry matches.
//
//	if rep := friendlyerrors.Check(&snippet); rep != nil {
//	    // rep.Errors: [{field: "title", code: 2041, message: "..."}]
//	}
//
// For HTTP handlers, [DecodeAndReport] combines JSON decoding, validation,
// and translation in one step; [WriteReport] writes the envelope with
// status 400.
//
// Sub-packages:
//   - openapi – OpenAPI schema generation, Swagger UI serving, and endpoint helpers
//   - transform – struct string transformation utilities
//   - is – common string format validation rules
package friendlyerrors
