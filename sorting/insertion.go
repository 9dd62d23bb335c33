package sorting

import "github.com/katalvlaran/lvlsort/key"

// Insertion sorts a copy of records by field with straight insertion sort.
//
// For each i in 1..n-1 the item at i is held and the scan walks left while
// the neighbor's key is greater than the held key, shifting neighbors right.
// Each scan step that reaches a comparison counts once (including the final,
// failing one); each shift counts as one move. Hitting the left boundary is
// not a comparison.
//
// Absent keys never compare greater, so the scan stops at them instead of
// moving them.
var Insertion = Instrument(NameInsertion, insertion)

func insertion(records []any, field string, _ Options) Outcome {
	data := cloneRecords(records)
	var comps, moves int64

	for i := 1; i < len(data); i++ {
		held := data[i]
		heldKey := key.Extract(held, field)
		j := i - 1
		for j >= 0 {
			comps++
			if !key.Greater(key.Extract(data[j], field), heldKey) {
				break
			}
			data[j+1] = data[j] // shift right
			moves++
			j--
		}
		data[j+1] = held
	}

	return Outcome{Records: data, Comparisons: comps, Moves: moves}
}
