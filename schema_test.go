package friendlyerrors_test

import (
	"context"
	"testing"

	fe "github.com/bd808/friendlyerrors"
	"github.com/bd808/friendlyerrors/is"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test types for schema generation ---

type schemaBasic struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

func (s *schemaBasic) Rules() []*fe.FieldRules {
	return []*fe.FieldRules{
		fe.Field(&s.Name, fe.Required, fe.Length(1, 100)),
		fe.Field(&s.Email, fe.Required, is.Email),
		fe.Field(&s.Age, fe.Min(0), fe.Max(150)),
	}
}

type schemaWithEnum struct {
	Status string `json:"status"`
}

func (s *schemaWithEnum) Rules() []*fe.FieldRules {
	return []*fe.FieldRules{
		fe.Field(&s.Status, fe.Required, fe.In("active", "inactive", "pending")),
	}
}

// --- Embedded struct ---

type schemaEmbedBase struct {
	ID string `json:"id"`
}

func (s *schemaEmbedBase) Rules() []*fe.FieldRules {
	return []*fe.FieldRules{
		fe.Field(&s.ID, fe.Required),
	}
}

type schemaWithEmbed struct {
	schemaEmbedBase
	Value string `json:"value"`
}

func (s *schemaWithEmbed) Rules() []*fe.FieldRules {
	return []*fe.FieldRules{
		fe.Field(&s.schemaEmbedBase),
		fe.Field(&s.Value, fe.Required),
	}
}

// --- docs:"skip" tag ---

type schemaWithSkipField struct {
	Public  string `json:"public"`
	Secret  string `json:"secret" docs:"skip"`
	Another string `json:"another"`
}

func (s *schemaWithSkipField) Rules() []*fe.FieldRules {
	return []*fe.FieldRules{
		fe.Field(&s.Public, fe.Required),
		fe.Field(&s.Another),
	}
}

// --- Slice of Ruler structs ---

type schemaChild struct {
	Label string `json:"label"`
}

func (s *schemaChild) Rules() []*fe.FieldRules {
	return []*fe.FieldRules{
		fe.Field(&s.Label, fe.Required, fe.Length(1, 50)),
	}
}

type schemaWithChildSlice struct {
	Items []schemaChild `json:"items"`
}

func (s *schemaWithChildSlice) Rules() []*fe.FieldRules {
	return []*fe.FieldRules{
		fe.Field(&s.Items),
	}
}

// --- ValueRuler ---

type schemaRating int

func (r schemaRating) ValueRules() []fe.Rule {
	return []fe.Rule{fe.Min(1), fe.Max(5), fe.Describe("star rating")}
}

type schemaWithRatingField struct {
	Score schemaRating `json:"score"`
}

func (s *schemaWithRatingField) Rules() []*fe.FieldRules {
	return []*fe.FieldRules{
		fe.Field(&s.Score),
	}
}

// --- ContextRuler ---

type schemaContextRuler struct {
	Title string `json:"title"`
}

func (s *schemaContextRuler) Rules(_ context.Context) []*fe.FieldRules {
	return []*fe.FieldRules{
		fe.Field(&s.Title, fe.Required),
	}
}

// schemaFor is a test helper that generates the schema for a type.
func schemaFor(t *testing.T, value any) *openapi3.Schema {
	t.Helper()
	ref, err := fe.NewSchemaRefForValue(value)
	require.NoError(t, err)
	require.NotNil(t, ref.Value)
	return ref.Value
}

// ============ Tests ============

func TestSchema_BasicStruct(t *testing.T) {
	schema := schemaFor(t, schemaBasic{})

	assert.Contains(t, schema.Required, "name")
	assert.Contains(t, schema.Required, "email")

	assert.Contains(t, schema.Properties, "name")
	assert.Contains(t, schema.Properties, "email")
	assert.Contains(t, schema.Properties, "age")

	ageProp := schema.Properties["age"]
	require.NotNil(t, ageProp.Value)
	require.NotNil(t, ageProp.Value.Min)
	require.NotNil(t, ageProp.Value.Max)
	assert.Equal(t, float64(0), *ageProp.Value.Min)
	assert.Equal(t, float64(150), *ageProp.Value.Max)

	nameProp := schema.Properties["name"]
	require.NotNil(t, nameProp.Value)
	require.NotNil(t, nameProp.Value.Min)
	require.NotNil(t, nameProp.Value.Max)
	assert.Equal(t, float64(1), *nameProp.Value.Min)
	assert.Equal(t, float64(100), *nameProp.Value.Max)

	emailProp := schema.Properties["email"]
	require.NotNil(t, emailProp.Value)
	assert.Equal(t, "email", emailProp.Value.Format)
}

func TestSchema_Enum(t *testing.T) {
	schema := schemaFor(t, schemaWithEnum{})

	statusProp := schema.Properties["status"]
	require.NotNil(t, statusProp.Value)
	assert.Equal(t, []any{"active", "inactive", "pending"}, statusProp.Value.Enum)
	assert.Contains(t, schema.Required, "status")
}

func TestSchema_EmbeddedStruct(t *testing.T) {
	schema := schemaFor(t, schemaWithEmbed{})

	assert.Contains(t, schema.Properties, "id")
	assert.Contains(t, schema.Properties, "value")
	assert.Contains(t, schema.Required, "value")
	assert.Contains(t, schema.Required, "id")
}

func TestSchema_DocsSkip(t *testing.T) {
	schema := schemaFor(t, schemaWithSkipField{})

	assert.NotContains(t, schema.Properties, "secret")
	assert.Contains(t, schema.Properties, "public")
	assert.Contains(t, schema.Properties, "another")
}

func TestSchema_SliceOfRulerStructs(t *testing.T) {
	schema := schemaFor(t, schemaWithChildSlice{})
	assert.Contains(t, schema.Properties, "items")

	itemsProp := schema.Properties["items"]
	require.NotNil(t, itemsProp.Value)
	assert.Equal(t, &openapi3.Types{"array"}, itemsProp.Value.Type)

	items := itemsProp.Value.Items
	require.NotNil(t, items)
	require.NotNil(t, items.Value)
	assert.Contains(t, items.Value.Properties, "label")
	assert.Contains(t, items.Value.Required, "label")
}

func TestSchema_ContextRuler(t *testing.T) {
	schema := schemaFor(t, schemaContextRuler{})
	assert.Contains(t, schema.Required, "title")
	assert.Contains(t, schema.Properties, "title")
}

func TestSchema_ValueRuler_MinMaxDescription(t *testing.T) {
	schema := schemaFor(t, schemaWithRatingField{})

	assert.Contains(t, schema.Properties, "score")

	scoreProp := schema.Properties["score"]
	require.NotNil(t, scoreProp.Value)
	require.NotNil(t, scoreProp.Value.Min)
	require.NotNil(t, scoreProp.Value.Max)
	assert.Equal(t, float64(1), *scoreProp.Value.Min)
	assert.Equal(t, float64(5), *scoreProp.Value.Max)
	assert.Equal(t, "star rating", scoreProp.Value.Description)
}

func TestReportSchemaRef(t *testing.T) {
	ref, err := fe.ReportSchemaRef()
	require.NoError(t, err)
	require.NotNil(t, ref.Value)

	assert.Contains(t, ref.Value.Properties, "message")
	assert.Contains(t, ref.Value.Properties, "code")
	assert.Contains(t, ref.Value.Properties, "errors")
}
