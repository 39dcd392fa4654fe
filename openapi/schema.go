package openapi

import (
	"net/http"

	fe "github.com/bd808/friendlyerrors"
	"github.com/getkin/kin-openapi/openapi3"
)

// NewSchemaRefForValue generates an OpenAPI schema for the given value,
// applying validation rules from types that implement [friendlyerrors.Ruler],
// [friendlyerrors.ContextRuler], or [friendlyerrors.ValueRuler].
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	return fe.NewSchemaRefForValue(value)
}

// SwaggerHandler returns an http.Handler serving the Swagger UI for doc at
// the given prefix.
func SwaggerHandler(prefix string, doc *openapi3.T) (http.Handler, error) {
	return fe.SwaggerHandler(prefix, doc)
}

// SwaggerHandlerMust is like [SwaggerHandler] but panics on error.
func SwaggerHandlerMust(prefix string, doc *openapi3.T) http.Handler {
	return fe.SwaggerHandlerMust(prefix, doc)
}
