package sorting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlsort/sorting"
)

// TestInsertion_Counters traces the counters on small inputs.
func TestInsertion_Counters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		in          []float64
		comps, move int64
	}{
		// i=1: 3>1 shift (c1,m1), boundary; i=2: 3>2 shift (c2,m2), 1>2 no (c3)
		{"three", []float64{3, 1, 2}, 3, 2},
		// already sorted: one failing comparison per position
		{"sorted", []float64{1, 2, 3, 4, 5}, 4, 0},
		// reversed: every scan runs to the boundary
		{"reversed", []float64{4, 3, 2, 1}, 6, 6},
		{"empty", nil, 0, 0},
		{"single", []float64{9}, 0, 0},
	}
	for _, tc := range tests {
		res := sorting.Insertion(rows(tc.in...), "v")
		assert.Equal(t, tc.comps, res.Comparisons, "%s comparisons", tc.name)
		assert.Equal(t, tc.move, res.Moves, "%s moves", tc.name)
	}
}

// TestInsertion_StableOnTies keeps equal keys in input order.
func TestInsertion_StableOnTies(t *testing.T) {
	t.Parallel()

	in := []any{
		map[string]any{"v": 2, "id": "a"},
		map[string]any{"v": 1, "id": "b"},
		map[string]any{"v": 2, "id": "c"},
		map[string]any{"v": 1, "id": "d"},
	}
	res := sorting.Insertion(in, "v")
	var ids []string
	for _, r := range res.Records {
		ids = append(ids, r.(map[string]any)["id"].(string))
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
}

// TestInsertion_AbsentStopsScan verifies the scan terminates on Absent keys.
func TestInsertion_AbsentStopsScan(t *testing.T) {
	t.Parallel()

	in := []any{
		map[string]any{"v": 5},
		map[string]any{"v": nil},
		map[string]any{"v": 1},
	}
	res := sorting.Insertion(in, "v")
	// i=1: 5 > absent? no (c1). i=2: absent > 1? no (c2).
	assert.Equal(t, in, res.Records)
	assert.Equal(t, int64(2), res.Comparisons)
	assert.Zero(t, res.Moves)
}
