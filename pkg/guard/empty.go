package guard

import (
	"reflect"
	"strings"
)

// IsNil reports whether v is nil. Typed nils stored in an interface
// (nil pointers, maps, slices, channels, funcs) are also treated as nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// IsEmpty reports whether the slice is nil or has no elements.
func IsEmpty[T any](s []T) bool {
	return len(s) == 0
}

// IsEmptyMap reports whether the map is nil or has no entries.
func IsEmptyMap[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}

// IsBlank reports whether s is empty after trimming surrounding whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsBlankPtr is IsBlank for nullable text; a nil pointer is blank.
func IsBlankPtr(s *string) bool {
	return s == nil || IsBlank(*s)
}
