package transform_test

import (
	"strings"
	"testing"

	"github.com/bd808/friendlyerrors/transform"
	"github.com/stretchr/testify/assert"
)

type inner struct {
	Note string
}

type outer struct {
	Name    string
	Alias   *string
	Nested  inner
	NestedP *inner
	Tags    []string
	Links   []*inner
	Meta    map[string]string
	Structs map[string]inner
	Count   int
}

func TestStructTrimSpace(t *testing.T) {
	alias := "  al  "
	o := &outer{
		Name:    "  padded  ",
		Alias:   &alias,
		Nested:  inner{Note: " nested "},
		NestedP: &inner{Note: " pointer "},
		Tags:    []string{" a ", "b ", " c"},
		Links:   []*inner{{Note: " link "}, nil},
		Meta:    map[string]string{"k": " v "},
		Structs: map[string]inner{"s": {Note: " deep "}},
		Count:   3,
	}

	transform.StructTrimSpace(o)

	assert.Equal(t, "padded", o.Name)
	assert.Equal(t, "al", *o.Alias)
	assert.Equal(t, "nested", o.Nested.Note)
	assert.Equal(t, "pointer", o.NestedP.Note)
	assert.Equal(t, []string{"a", "b", "c"}, o.Tags)
	assert.Equal(t, "link", o.Links[0].Note)
	assert.Nil(t, o.Links[1])
	assert.Equal(t, "v", o.Meta["k"])
	assert.Equal(t, "deep", o.Structs["s"].Note)
	assert.Equal(t, 3, o.Count)
}

func TestStructToLower(t *testing.T) {
	o := &outer{Name: "MiXeD", Nested: inner{Note: "UPPER"}}

	transform.StructToLower(o)

	assert.Equal(t, "mixed", o.Name)
	assert.Equal(t, "upper", o.Nested.Note)
}

func TestStructStringFunc(t *testing.T) {
	o := &outer{Name: "abc", Tags: []string{"x"}}

	transform.StructStringFunc(o, strings.ToUpper)

	assert.Equal(t, "ABC", o.Name)
	assert.Equal(t, []string{"X"}, o.Tags)
}

func TestStructMulti(t *testing.T) {
	o := &outer{Name: "  MiXeD  "}

	transform.StructMulti(o, transform.StructTrimSpace, transform.StructToLower)

	assert.Equal(t, "mixed", o.Name)
}

func TestStructTrimSpace_NonStruct(t *testing.T) {
	s := " untouched "
	transform.StructTrimSpace(&s)
	assert.Equal(t, " untouched ", s)

	transform.StructTrimSpace(nil)
}

func TestStructTrimSpace_NilPointerField(t *testing.T) {
	o := &outer{Name: " x "}
	transform.StructTrimSpace(o)

	assert.Equal(t, "x", o.Name)
	assert.Nil(t, o.Alias)
	assert.Nil(t, o.NestedP)
}
