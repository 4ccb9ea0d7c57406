package tagr

import (
	"reflect"
	"strings"
)

// Projection derives the rendered value of a binding from the cell value.
type Projection[T any] func(T) any

// Field returns a Projection reading the named field of the value. See
// FieldValue for the lookup rules.
func Field[T any](name string) Projection[T] {
	return func(v T) any {
		out, _ := FieldValue(v, name)
		return out
	}
}

// FieldMap derives a slot value from an item: either a named field of the
// item or a function of the item and its index. The zero FieldMap yields the
// item itself.
type FieldMap[T any] struct {
	name string
	fn   func(T, int) any
}

// FieldName maps a slot to the named field of the item.
func FieldName[T any](name string) FieldMap[T] {
	return FieldMap[T]{name: name}
}

// FieldFunc maps a slot to fn(item, index).
func FieldFunc[T any](fn func(value T, index int) any) FieldMap[T] {
	return FieldMap[T]{fn: fn}
}

// Resolve returns the slot value for item v at index.
func (f FieldMap[T]) Resolve(v T, index int) any {
	switch {
	case f.fn != nil:
		return f.fn(v, index)
	case f.name != "":
		out, _ := FieldValue(v, f.name)
		return out
	default:
		return v
	}
}

// FieldValue looks up name in v. Maps with string keys are indexed directly.
// For structs the lookup tries, in order, the exact field name, a json tag
// with that name and a case-insensitive field name; unexported fields are
// never read. Pointers and interfaces are followed.
func FieldValue(v any, name string) (any, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true

	case reflect.Struct:
		rt := rv.Type()
		if sf, ok := rt.FieldByName(name); ok && sf.IsExported() {
			return rv.FieldByIndex(sf.Index).Interface(), true
		}
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if !sf.IsExported() {
				continue
			}
			if tag, _, _ := strings.Cut(sf.Tag.Get("json"), ","); tag == name {
				return rv.Field(i).Interface(), true
			}
		}
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if sf.IsExported() && strings.EqualFold(sf.Name, name) {
				return rv.Field(i).Interface(), true
			}
		}
	}
	return nil, false
}
