package bench

import "github.com/google/btree"

type ranked struct {
	value int64
	order int // position in Report.Entries; breaks ties
	entry Entry
}

func lessRanked(a, b ranked) bool {
	if a.value != b.value {
		return a.value < b.value
	}
	return a.order < b.order
}

// Ranked returns the entries ordered best first by m.
// Ties keep run order.
func (r *Report) Ranked(m Metric) []Entry {
	tr := btree.NewG[ranked](8, lessRanked)
	for i, e := range r.Entries {
		tr.ReplaceOrInsert(ranked{value: e.value(m), order: i, entry: e})
	}

	out := make([]Entry, 0, tr.Len())
	tr.Ascend(func(it ranked) bool {
		out = append(out, it.entry)
		return true
	})
	return out
}

// Winner returns the best entry by m, or false for an empty report.
func (r *Report) Winner(m Metric) (Entry, bool) {
	ranked := r.Ranked(m)
	if len(ranked) == 0 {
		return Entry{}, false
	}
	return ranked[0], true
}
