// Package key extracts comparable sort keys from heterogeneous records.
//
// What:
//
//   - Key: a tagged union Numeric(float64) | Text(string) | Absent.
//   - Extract(record, field): pulls the named field out of a record and
//     converts it into a Key. Extraction never fails; every problem
//     (missing field, unknown record shape, empty value, panicking accessor)
//     degrades to Absent.
//   - FieldAccessible: the single capability Extract needs from a record.
//     Adapters cover the common shapes: Map (map[string]any), StringMap
//     (map[string]string) and Attrs (structs and pointers to structs).
//   - Greater / Less / Compare: the ordering used by the sorting package.
//
// Conversion rules (in order):
//
//  1. field == "" → the record itself is the value.
//  2. Slices and arrays (except string / []byte) → first element, Absent if empty.
//  3. Unwrapper (Item() any) and driver.Valuer values are unwrapped,
//     non-nil pointers are dereferenced.
//  4. nil or a whitespace-only string form → Absent.
//  5. Numeric kinds and bool → float64; anything else is stringified and
//     parsed as float64, falling back to the lowercase string.
//
// Ordering:
//
//   - Numeric vs Numeric and Text vs Text compare naturally.
//   - Every Numeric key orders before every Text key.
//   - A comparison that involves Absent is neither greater nor less, so
//     an algorithm never swaps on an Absent key.
//
// Complexity: Extract is O(1) for maps and O(fields) for struct records
// (reflect lookup by name); comparisons are O(1) for numbers and O(len) for text.
package key
