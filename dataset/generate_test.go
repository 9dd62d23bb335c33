package dataset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsort/dataset"
	"github.com/katalvlaran/lvlsort/key"
)

// column extracts the key column as keys.
func column(t *testing.T, tbl *dataset.Table, field string) []key.Key {
	t.Helper()
	out := make([]key.Key, tbl.Len())
	for i, r := range tbl.Records {
		out[i] = key.Extract(r, field)
	}
	return out
}

// TestGenerate_Shapes checks the defining property of every shape.
func TestGenerate_Shapes(t *testing.T) {
	t.Parallel()

	const n = 50
	for _, shape := range dataset.Shapes() {
		shape := shape
		t.Run(shape.String(), func(t *testing.T) {
			t.Parallel()
			tbl, err := dataset.Generate(n, shape, dataset.WithSeed(7))
			require.NoError(t, err)
			require.Equal(t, n, tbl.Len())
			assert.Equal(t, []string{"id", "value", "label"}, tbl.Header)

			keys := column(t, tbl, "value")
			for _, k := range keys {
				f, ok := k.Float()
				require.True(t, ok)
				assert.GreaterOrEqual(t, f, 0.0)
				assert.Less(t, f, float64(n))
			}

			switch shape {
			case dataset.Sorted:
				for i := 1; i < n; i++ {
					assert.True(t, key.Less(keys[i-1], keys[i]), "sorted at %d", i)
				}
			case dataset.Reversed:
				for i := 1; i < n; i++ {
					assert.True(t, key.Greater(keys[i-1], keys[i]), "reversed at %d", i)
				}
			case dataset.FewUnique:
				distinct := map[key.Key]bool{}
				for _, k := range keys {
					distinct[k] = true
				}
				assert.Len(t, distinct, 8)
			}
		})
	}
}

// TestGenerate_Deterministic compares two runs with the same seed.
func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := dataset.Generate(100, dataset.Random, dataset.WithSeed(3))
	require.NoError(t, err)
	b, err := dataset.Generate(100, dataset.Random, dataset.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, a.Records, b.Records)
	assert.Equal(t, "generated:random(n=100,seed=3)", a.Source)

	c, err := dataset.Generate(100, dataset.Random, dataset.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	assert.NotEqual(t, a.Records, c.Records)

	d1, _ := dataset.Generate(10, dataset.Random)
	d2, _ := dataset.Generate(10, dataset.Random, dataset.WithSeed(0))
	assert.Equal(t, d1.Records, d2.Records, "seed 0 means the default seed")
}

// TestGenerate_Options covers field rename, unique pool and absent rate.
func TestGenerate_Options(t *testing.T) {
	t.Parallel()

	tbl, err := dataset.Generate(40, dataset.FewUnique,
		dataset.WithField("frp"), dataset.WithUniqueValues(3), dataset.WithAbsentRate(0.25))
	require.NoError(t, err)
	assert.True(t, tbl.HasColumn("frp"))
	assert.False(t, tbl.HasColumn("value"))

	absent := 0
	distinct := map[key.Key]bool{}
	for _, k := range column(t, tbl, "frp") {
		if k.IsAbsent() {
			absent++
			continue
		}
		distinct[k] = true
	}
	assert.Equal(t, 10, absent)
	assert.LessOrEqual(t, len(distinct), 3)

	nearly, err := dataset.Generate(200, dataset.NearlySorted, dataset.WithSwapRate(0))
	require.NoError(t, err)
	sorted, _ := dataset.Generate(200, dataset.Sorted)
	assert.Equal(t, sorted.Records, nearly.Records, "no swaps leaves the run sorted")
}

// TestGenerate_Errors verifies validation sentinels.
func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		s    dataset.Shape
		opts []dataset.Option
		want error
	}{
		{"negative n", -1, dataset.Random, nil, dataset.ErrBadSize},
		{"bad shape", 3, dataset.Shape(42), nil, dataset.ErrUnknownShape},
		{"empty field", 3, dataset.Random, []dataset.Option{dataset.WithField("")}, dataset.ErrOptionViolation},
		{"zero unique", 3, dataset.FewUnique, []dataset.Option{dataset.WithUniqueValues(0)}, dataset.ErrOptionViolation},
		{"absent > 1", 3, dataset.Random, []dataset.Option{dataset.WithAbsentRate(1.5)}, dataset.ErrInvalidProbability},
		{"swap < 0", 3, dataset.NearlySorted, []dataset.Option{dataset.WithSwapRate(-0.1)}, dataset.ErrInvalidProbability},
	}
	for _, tc := range tests {
		_, err := dataset.Generate(tc.n, tc.s, tc.opts...)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}

	empty, err := dataset.Generate(0, dataset.Random)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
}

// TestParseShape accepts canonical names and common spellings.
func TestParseShape(t *testing.T) {
	t.Parallel()

	for _, s := range dataset.Shapes() {
		got, err := dataset.ParseShape(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := dataset.ParseShape(" Nearly_Sorted ")
	require.NoError(t, err)
	assert.Equal(t, dataset.NearlySorted, got)

	_, err = dataset.ParseShape("zigzag")
	assert.ErrorIs(t, err, dataset.ErrUnknownShape)
	assert.Equal(t, "shape(9)", dataset.Shape(9).String())
}
