package sorting

import "github.com/katalvlaran/lvlsort/key"

// Bubble sorts a copy of records by field with classic adjacent-pair bubble sort.
//
// Algorithm:
//  1. For i = 0..n-1, for j = 0..n-i-2: compare key(j) and key(j+1).
//  2. Swap when key(j) > key(j+1); Absent keys never compare greater.
//
// Every pair is counted, so Comparisons == n(n-1)/2 for any input of length n.
// There is no early exit. Moves counts actual swaps.
var Bubble = Instrument(NameBubble, bubble)

func bubble(records []any, field string, _ Options) Outcome {
	data := cloneRecords(records)
	n := len(data)
	var comps, moves int64

	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			comps++
			if key.Greater(key.Extract(data[j], field), key.Extract(data[j+1], field)) {
				data[j], data[j+1] = data[j+1], data[j]
				moves++
			}
		}
	}

	return Outcome{Records: data, Comparisons: comps, Moves: moves}
}
