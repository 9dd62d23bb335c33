package sorting

import "github.com/katalvlaran/lvlsort/key"

// Quick sorts a copy of records by field with a three-way (less / equal /
// greater) quicksort whose pivot is the key of the middle element.
//
// Algorithm:
//  1. len ≤ 1 or depth > MaxDepth → return the sublist as is.
//  2. pivot = key(lst[len/2]); Absent pivot → return the sublist as is.
//  3. For every item: Absent key → drop it; otherwise count one comparison
//     and bucket it by strict inequality. Less/greater placements count one
//     move each, equal placements count none.
//  4. Return quick(less, depth+1) ++ equal ++ quick(greater, depth+1).
//
// Unlike the other algorithms Quick does NOT always return a permutation of
// its input: Absent-keyed items reached by a partition are removed, and
// sublists stopped by step 1 or 2 come back unordered. See the package doc.
var Quick = Instrument(NameQuick, quickSort)

// quicker threads the counters and depth ceiling through one call.
type quicker struct {
	field    string
	maxDepth int
	comps    int64
	moves    int64
}

func quickSort(records []any, field string, o Options) Outcome {
	q := &quicker{field: field, maxDepth: o.MaxDepth}
	sorted := q.sort(cloneRecords(records), 0)
	return Outcome{Records: sorted, Comparisons: q.comps, Moves: q.moves}
}

func (q *quicker) sort(lst []any, depth int) []any {
	if len(lst) <= 1 || depth > q.maxDepth {
		return lst
	}

	pivot := key.Extract(lst[len(lst)/2], q.field)
	if pivot.IsAbsent() {
		return lst
	}

	var less, equal, greater []any
	for _, item := range lst {
		k := key.Extract(item, q.field)
		if k.IsAbsent() {
			continue // dropped
		}
		q.comps++
		switch {
		case key.Less(k, pivot):
			less = append(less, item)
			q.moves++
		case key.Greater(k, pivot):
			greater = append(greater, item)
			q.moves++
		default:
			equal = append(equal, item)
		}
	}

	out := make([]any, 0, len(less)+len(equal)+len(greater))
	out = append(out, q.sort(less, depth+1)...)
	out = append(out, equal...)
	out = append(out, q.sort(greater, depth+1)...)
	return out
}
