package friendlyerrors

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Documentation-only rules. They never fail validation and exist solely to
// enrich the generated schema.

type describe struct {
	desc string
}

// Describe returns a documentation-only rule that appends desc to the schema description.
func Describe(desc string) Rule {
	return &describe{desc: desc}
}

func (r *describe) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += r.desc
	return nil
}

func (r *describe) Validate(_ any) error {
	return nil
}

type defaulter struct {
	a any
}

// Default returns a documentation-only rule that sets the schema default value.
func Default(a any) Rule {
	return defaulter{a: a}
}

func (r defaulter) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Default = r.a
	return nil
}

func (r defaulter) Validate(_ any) error {
	return nil
}

type example struct {
	ex any
}

// Example returns a documentation-only rule that sets the schema example value.
func Example(ex any) Rule {
	return &example{ex: ex}
}

func (r *example) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Example = r.ex
	return nil
}

func (r *example) Validate(_ any) error {
	return nil
}

type deprecate struct{}

// Deprecate returns a documentation-only rule that marks the field as deprecated in the schema.
func Deprecate() Rule {
	return &deprecate{}
}

func (r *deprecate) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Deprecated = true
	return nil
}

func (r *deprecate) Validate(_ any) error {
	return nil
}
