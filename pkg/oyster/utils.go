package oyster

import "reflect"

// IsNil reports whether i is nil or a typed nil held in an interface.
// Zero values of non-nillable kinds ("" or 0) are never nil.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
