package friendlyerrors

import (
	"context"
	"encoding/json"
	"reflect"
	"strconv"
	"time"
)

var (
	timeType       = reflect.TypeOf(time.Time{})
	jsonNumberType = reflect.TypeOf(json.Number(""))
)

// fieldTypeFor resolves the FieldType of the field addressed by path within
// root, for code table lookup. The base type comes from the Go field type;
// a rule implementing FieldTyper on the field overrides it. Returns false
// when the path cannot be resolved, in which case lookup skips the
// type-keyed table.
func fieldTypeFor(root any, path []string) (FieldType, bool) {
	if root == nil || len(path) == 0 {
		return "", false
	}
	rv := reflect.ValueOf(root)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return structFieldType(rv, path)
	case reflect.Slice, reflect.Array, reflect.Map:
		return elementFieldType(rv, rv.Type(), path)
	}
	return "", false
}

// structFieldType resolves path[0] as a field of the struct owner and
// descends into the remaining segments.
func structFieldType(owner reflect.Value, path []string) (FieldType, bool) {
	sf, fv := structFieldByKey(owner, path[0])
	if sf == nil {
		return "", false
	}
	if len(path) == 1 {
		if ft, ok := typeFromRules(declaredRules(owner)[path[0]]); ok {
			return ft, true
		}
		return goFieldType(sf.Type)
	}
	return descendFieldType(fv, sf.Type, path[1:])
}

// descendFieldType follows one nested error key into a field's value.
// Struct fields recurse by child field name; slices and maps consume an
// index or key segment first.
func descendFieldType(val reflect.Value, typ reflect.Type, path []string) (FieldType, bool) {
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if val.IsValid() && (val.Kind() == reflect.Ptr || val.Kind() == reflect.Interface) {
		if val.IsNil() {
			val = reflect.Value{}
		} else {
			val = val.Elem()
		}
	}

	switch typ.Kind() {
	case reflect.Struct:
		if typ == timeType {
			return "", false
		}
		if !val.IsValid() || val.Kind() != reflect.Struct {
			val = reflect.New(typ).Elem()
		}
		return structFieldType(val, path)
	case reflect.Slice, reflect.Array, reflect.Map:
		return elementFieldType(val, typ, path)
	}
	return "", false
}

// elementFieldType consumes the index (or key) segment of a collection and
// resolves the element addressed by it.
func elementFieldType(val reflect.Value, typ reflect.Type, path []string) (FieldType, bool) {
	var ev reflect.Value
	switch typ.Kind() {
	case reflect.Slice, reflect.Array:
		if i, err := strconv.Atoi(path[0]); err == nil && val.IsValid() && val.Kind() == typ.Kind() && i >= 0 && i < val.Len() {
			ev = val.Index(i)
		}
	case reflect.Map:
		if typ.Key().Kind() == reflect.String && val.IsValid() && val.Kind() == reflect.Map {
			ev = val.MapIndex(reflect.ValueOf(path[0]).Convert(typ.Key()))
		}
	default:
		return "", false
	}
	if len(path) == 1 {
		return goFieldType(typ.Elem())
	}
	return descendFieldType(ev, typ.Elem(), path[1:])
}

// structFieldByKey finds the exported field whose json name (or Go name)
// matches key. Embedded structs are searched recursively.
func structFieldByKey(owner reflect.Value, key string) (*reflect.StructField, reflect.Value) {
	t := owner.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous {
			fi := owner.Field(i)
			if sf.Type.Kind() == reflect.Ptr {
				if fi.IsNil() {
					continue
				}
				fi = fi.Elem()
			}
			if fi.Kind() == reflect.Struct {
				if f, v := structFieldByKey(fi, key); f != nil {
					return f, v
				}
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if fieldKey(sf) == key || sf.Name == key {
			return &sf, owner.Field(i)
		}
	}
	return nil, reflect.Value{}
}

// declaredRules maps json field names to the rules the owner's Rules()
// declares for them, with embedded Ruler fields expanded. Used to let rules
// refine the lookup type (In implies choice, Date implies datetime, ...).
func declaredRules(owner reflect.Value) map[string][]Rule {
	if !owner.CanAddr() {
		cp := reflect.New(owner.Type())
		cp.Elem().Set(owner)
		owner = cp.Elem()
	}
	pi := owner.Addr().Interface()

	var fields []*FieldRules
	switch r := pi.(type) {
	case Ruler:
		fields = r.Rules()
	case ContextRuler:
		fields = r.Rules(context.Background())
	default:
		return nil
	}
	fields = expandFields(context.Background(), pi, fields)

	out := make(map[string][]Rule, len(fields))
	for _, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			continue
		}
		sf := findStructField(owner, fv)
		if sf == nil || sf.Anonymous {
			continue
		}
		out[fieldKey(*sf)] = fr.rules
	}
	return out
}

func typeFromRules(rules []Rule) (FieldType, bool) {
	for _, r := range rules {
		if ft, ok := r.(FieldTyper); ok {
			return ft.FieldType(), true
		}
	}
	return "", false
}

// goFieldType maps a Go type to its base FieldType.
func goFieldType(t reflect.Type) (FieldType, bool) {
	if t == nil {
		return "", false
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == timeType {
		return TypeDateTime, true
	}
	if t == jsonNumberType {
		return TypeDecimal, true
	}
	switch t.Kind() {
	case reflect.Bool:
		return TypeBoolean, true
	case reflect.String:
		return TypeString, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TypeInteger, true
	case reflect.Float32, reflect.Float64:
		return TypeFloat, true
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return TypeString, true
		}
		return TypeSlice, true
	case reflect.Map:
		return TypeMap, true
	case reflect.Struct:
		return TypeObject, true
	}
	return "", false
}
