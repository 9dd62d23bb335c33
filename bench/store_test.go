package bench_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsort/bench"
)

func TestStore_SaveRecent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := bench.OpenStore(path)
	require.NoError(t, err)

	first := sampleReport()
	first.StartedAt = time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Save(ctx, first))

	second := &bench.Report{
		Source:    "generated:random(n=10,seed=1)",
		Field:     "value",
		Input:     10,
		StartedAt: first.StartedAt.Add(time.Hour),
		Entries:   []bench.Entry{{Algorithm: "merge", Records: 10, Comparisons: 22, Moves: 34, Elapsed: 3 * time.Microsecond}},
	}
	require.NoError(t, s.Save(ctx, second))
	require.NoError(t, s.Save(ctx, &bench.Report{}), "empty reports are ignored")
	require.NoError(t, s.Close())

	// reopen to prove the rows hit disk
	s, err = bench.OpenStore(path)
	require.NoError(t, err)
	defer s.Close()

	all, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)

	newest := all[0]
	assert.Equal(t, "merge", newest.Algorithm)
	assert.Equal(t, "value", newest.Field)
	assert.Equal(t, 10, newest.Input)
	assert.Equal(t, int64(22), newest.Comparisons)
	assert.Equal(t, 3*time.Microsecond, newest.Elapsed)
	assert.True(t, second.StartedAt.Equal(newest.StartedAt))
	assert.Nil(t, newest.Sorted)

	top, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "quick", top[1].Algorithm)
	assert.Equal(t, 10, top[1].Dropped)
	assert.Equal(t, "focos.csv", top[1].Source)
	assert.Greater(t, top[0].ID, top[1].ID)
}

func TestStore_Closed(t *testing.T) {
	s, err := bench.OpenStore(filepath.Join(t.TempDir(), "h.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.Save(context.Background(), sampleReport()), bench.ErrStoreClosed)
	_, err = s.Recent(context.Background(), 1)
	assert.ErrorIs(t, err, bench.ErrStoreClosed)
}
