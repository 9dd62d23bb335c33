package sorting

import "github.com/katalvlaran/lvlsort/key"

// Merge sorts a copy of records by field with top-down merge sort.
//
// Algorithm:
//  1. len ≤ 1 → return as is (no comparisons).
//  2. Split at mid = len/2, sort both halves recursively.
//  3. Merge with two cursors, taking from the left unless left > right,
//     which keeps equal keys in input order (stable).
//
// Accounting: one comparison per element chosen while both halves still have
// elements; one move per element written to the merged output, including the
// drain of whichever half remains. A merge of n elements therefore always
// adds n moves: the counter tracks data movement, unlike the swap-based
// counters of Bubble and Quick.
var Merge = Instrument(NameMerge, mergeSort)

// merger threads the counters through the recursion of one call.
type merger struct {
	field string
	comps int64
	moves int64
}

func mergeSort(records []any, field string, _ Options) Outcome {
	m := &merger{field: field}
	sorted := m.sort(cloneRecords(records))
	return Outcome{Records: sorted, Comparisons: m.comps, Moves: m.moves}
}

// sort returns a sorted version of lst; lst itself may be reused for len ≤ 1.
func (m *merger) sort(lst []any) []any {
	if len(lst) <= 1 {
		return lst
	}
	mid := len(lst) / 2
	left := m.sort(lst[:mid:mid])
	right := m.sort(lst[mid:])
	return m.merge(left, right)
}

// merge combines two sorted runs into a fresh slice.
func (m *merger) merge(left, right []any) []any {
	merged := make([]any, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		m.comps++
		if !key.Greater(key.Extract(left[i], m.field), key.Extract(right[j], m.field)) {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
		m.moves++
	}
	for ; i < len(left); i++ {
		merged = append(merged, left[i])
		m.moves++
	}
	for ; j < len(right); j++ {
		merged = append(merged, right[j])
		m.moves++
	}
	return merged
}
