package sorting

import "reflect"

// cloneRecords returns a deep copy of records so that sorting never
// aliases caller-owned data.
// Pointers shared between records stay shared between the copies.
func cloneRecords(records []any) []any {
	c := copier{seen: make(map[visit]reflect.Value)}
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = c.value(r)
	}
	return out
}

// value deep-copies v. Cloner implementations copy themselves and the
// common row shapes take a fast path; everything else goes through
// reflection. Unexported struct fields are copied by assignment, channels
// and functions are shared.
func (c copier) value(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case Cloner:
		return t.Clone()
	case string, float64, float32, int, int64, int32, bool:
		return v
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, x := range t {
			m[k] = c.value(x)
		}
		return m
	case map[string]string:
		m := make(map[string]string, len(t))
		for k, x := range t {
			m[k] = x
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, x := range t {
			s[i] = c.value(x)
		}
		return s
	}
	return c.copy(reflect.ValueOf(v)).Interface()
}

// visit identifies a pointer or map already copied, so shared and cyclic
// references keep their shape in the copy.
type visit struct {
	ptr uintptr
	typ reflect.Type
}

type copier struct {
	seen map[visit]reflect.Value
}

var clonerType = reflect.TypeOf((*Cloner)(nil)).Elem()

func (c copier) copy(src reflect.Value) reflect.Value {
	if out, ok := c.viaCloner(src); ok {
		return out
	}

	switch src.Kind() {
	case reflect.Pointer:
		if src.IsNil() {
			return reflect.Zero(src.Type())
		}
		v := visit{src.Pointer(), src.Type()}
		if dst, ok := c.seen[v]; ok {
			return dst
		}
		dst := reflect.New(src.Type().Elem())
		c.seen[v] = dst
		dst.Elem().Set(c.copy(src.Elem()))
		return dst

	case reflect.Interface:
		if src.IsNil() {
			return reflect.Zero(src.Type())
		}
		dst := reflect.New(src.Type()).Elem()
		dst.Set(c.copy(src.Elem()))
		return dst

	case reflect.Struct:
		dst := reflect.New(src.Type()).Elem()
		dst.Set(src)
		for i := 0; i < src.NumField(); i++ {
			if f := dst.Field(i); f.CanSet() {
				f.Set(c.copy(src.Field(i)))
			}
		}
		return dst

	case reflect.Map:
		if src.IsNil() {
			return reflect.Zero(src.Type())
		}
		v := visit{src.Pointer(), src.Type()}
		if dst, ok := c.seen[v]; ok {
			return dst
		}
		dst := reflect.MakeMapWithSize(src.Type(), src.Len())
		c.seen[v] = dst
		iter := src.MapRange()
		for iter.Next() {
			dst.SetMapIndex(c.copy(iter.Key()), c.copy(iter.Value()))
		}
		return dst

	case reflect.Slice:
		if src.IsNil() {
			return reflect.Zero(src.Type())
		}
		dst := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		if flat(src.Type().Elem()) {
			reflect.Copy(dst, src)
			return dst
		}
		for i := 0; i < src.Len(); i++ {
			dst.Index(i).Set(c.copy(src.Index(i)))
		}
		return dst

	case reflect.Array:
		dst := reflect.New(src.Type()).Elem()
		dst.Set(src)
		if !flat(src.Type().Elem()) {
			for i := 0; i < src.Len(); i++ {
				dst.Index(i).Set(c.copy(src.Index(i)))
			}
		}
		return dst

	default:
		return src
	}
}

// viaCloner uses a Cloner implementation found below the top level.
func (c copier) viaCloner(src reflect.Value) (reflect.Value, bool) {
	if !src.IsValid() || src.Kind() == reflect.Interface || !src.CanInterface() {
		return reflect.Value{}, false
	}
	if !src.Type().Implements(clonerType) {
		return reflect.Value{}, false
	}
	if src.Kind() == reflect.Pointer && src.IsNil() {
		return reflect.Value{}, false
	}
	out := reflect.ValueOf(src.Interface().(Cloner).Clone())
	if !out.IsValid() || !out.Type().AssignableTo(src.Type()) {
		return reflect.Value{}, false
	}
	return out, true
}

// flat reports whether values of t hold no references, so a shallow copy is deep.
func flat(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	case reflect.Array:
		return flat(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !flat(t.Field(i).Type) {
				return false
			}
		}
		return true
	}
	return false
}
