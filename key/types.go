package key

import (
	"reflect"
	"strconv"
	"strings"
)

// Kind tags the variant held by a Key.
type Kind uint8

const (
	// Absent means no usable key could be extracted. It is the zero Kind.
	Absent Kind = iota
	// Numeric keys carry a float64.
	Numeric
	// Text keys carry a lowercase string.
	Text
)

// String returns the lowercase variant name.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Text:
		return "text"
	default:
		return "absent"
	}
}

// Key is the comparable value extracted from a record.
// The zero Key is Absent.
type Key struct {
	kind Kind
	num  float64
	text string
}

// None is the Absent key.
var None = Key{}

// Num returns a Numeric key holding f.
func Num(f float64) Key { return Key{kind: Numeric, num: f} }

// Str returns a Text key holding strings.ToLower(s).
// Callers that need the whitespace rule of Extract should go through Extract.
func Str(s string) Key { return Key{kind: Text, text: strings.ToLower(s)} }

// Kind reports which variant k holds.
func (k Key) Kind() Kind { return k.kind }

// IsAbsent reports whether k carries no value.
func (k Key) IsAbsent() bool { return k.kind == Absent }

// Float returns the numeric payload and true for Numeric keys.
func (k Key) Float() (float64, bool) {
	if k.kind != Numeric {
		return 0, false
	}
	return k.num, true
}

// Text returns the string payload and true for Text keys.
func (k Key) Text() (string, bool) {
	if k.kind != Text {
		return "", false
	}
	return k.text, true
}

// String renders the key for logs and test failure messages.
func (k Key) String() string {
	switch k.kind {
	case Numeric:
		return strconv.FormatFloat(k.num, 'g', -1, 64)
	case Text:
		return strconv.Quote(k.text)
	default:
		return "<absent>"
	}
}

// FieldAccessible is implemented by records that can look up a named field.
// Field returns (value, true) when the field exists, even if the value is nil.
type FieldAccessible interface {
	Field(name string) (any, bool)
}

// Unwrapper is implemented by single-value wrappers (boxed numbers,
// one-element containers) whose payload should be used as the key.
type Unwrapper interface {
	Item() any
}

// Map adapts map[string]any records.
type Map map[string]any

// Field implements FieldAccessible.
func (m Map) Field(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// StringMap adapts map[string]string records, e.g. rows read from CSV.
type StringMap map[string]string

// Field implements FieldAccessible.
func (m StringMap) Field(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

// Attrs adapts a struct (or a pointer to one) by resolving fields through
// reflection. A field matches when its Go name equals the requested name,
// equals it case-insensitively, or carries a `sort:"name"` / `json:"name"` tag.
// Unexported fields are never read.
type Attrs struct {
	v reflect.Value
}

// NewAttrs wraps rec. ok is false when rec is not a struct or a non-nil
// pointer chain ending in a struct.
func NewAttrs(rec any) (Attrs, bool) {
	v := reflect.ValueOf(rec)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Attrs{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return Attrs{}, false
	}
	return Attrs{v: v}, true
}

// Field implements FieldAccessible.
func (a Attrs) Field(name string) (any, bool) {
	if !a.v.IsValid() {
		return nil, false
	}
	t := a.v.Type()
	fallback := -1
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Name == name || tagName(sf, "sort") == name || tagName(sf, "json") == name {
			return a.v.Field(i).Interface(), true
		}
		if fallback < 0 && strings.EqualFold(sf.Name, name) {
			fallback = i
		}
	}
	if fallback >= 0 {
		return a.v.Field(fallback).Interface(), true
	}
	return nil, false
}

// tagName returns the name part of a struct tag ("" when unset or "-").
func tagName(sf reflect.StructField, tag string) string {
	raw, ok := sf.Tag.Lookup(tag)
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(raw, ",")
	if name == "-" {
		return ""
	}
	return name
}

// accessorFor resolves the FieldAccessible view of rec, if any.
func accessorFor(rec any) (FieldAccessible, bool) {
	switch r := rec.(type) {
	case nil:
		return nil, false
	case FieldAccessible:
		return r, true
	case map[string]any:
		return Map(r), true
	case map[string]string:
		return StringMap(r), true
	}
	if a, ok := NewAttrs(rec); ok {
		return a, true
	}
	return nil, false
}
