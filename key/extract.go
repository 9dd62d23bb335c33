package key

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// maxUnwrap bounds the unwrap loop so a wrapper that returns itself
// cannot spin forever.
const maxUnwrap = 8

// Extract pulls a comparable Key from rec.
//
// An empty field converts rec itself (useful for slices of bare scalars).
// Otherwise rec must be FieldAccessible, a map[string]any, a map[string]string,
// or a struct / pointer to struct. Any failure yields None; Extract never panics.
func Extract(rec any, field string) (k Key) {
	defer func() {
		if r := recover(); r != nil {
			k = None
		}
	}()

	val := rec
	if field != "" {
		acc, ok := accessorFor(rec)
		if !ok {
			return None
		}
		if val, ok = acc.Field(field); !ok {
			return None
		}
	}

	val, ok := first(val)
	if !ok {
		return None
	}
	val = unwrap(val)

	return convert(val)
}

// first replaces a sequence with its first element.
// It reports false for empty sequences.
func first(val any) (any, bool) {
	switch val.(type) {
	case nil, string, []byte:
		return val, true
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return nil, false
		}
		return rv.Index(0).Interface(), true
	default:
		return val, true
	}
}

// unwrap peels Unwrapper, driver.Valuer and pointer layers off val.
func unwrap(val any) any {
	for i := 0; i < maxUnwrap; i++ {
		switch v := val.(type) {
		case nil:
			return nil
		case Unwrapper:
			val = v.Item()
			continue
		case driver.Valuer:
			dv, err := v.Value()
			if err != nil {
				return nil
			}
			val = dv
			continue
		}
		rv := reflect.ValueOf(val)
		if rv.Kind() != reflect.Pointer {
			return val
		}
		if rv.IsNil() {
			return nil
		}
		val = rv.Elem().Interface()
	}
	return val
}

// convert applies the numeric-then-text rule to a scalar.
func convert(val any) Key {
	switch v := val.(type) {
	case nil:
		return None
	case bool:
		if v {
			return Num(1)
		}
		return Num(0)
	case float64:
		return Num(v)
	case float32:
		return Num(float64(v))
	case int:
		return Num(float64(v))
	case int64:
		return Num(float64(v))
	case string:
		return fromString(v)
	case []byte:
		return fromString(string(v))
	}

	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Num(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Num(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Num(rv.Float())
	case reflect.String:
		return fromString(rv.String())
	}

	return fromString(fmt.Sprint(val))
}

// fromString parses s as float64 and falls back to lowercase text.
// Whitespace-only input is Absent.
func fromString(s string) Key {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return None
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return Num(f) // out-of-range literals parse to ±Inf
	}
	return Str(s)
}
