package reactive

import "reflect"

// Equal reports whether a and b hold the same value. Comparable scalars are
// compared with ==; slices, maps, structs and everything else fall back to
// reflect.DeepEqual.
func Equal(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	default:
		return reflect.DeepEqual(a, b)
	}
}
