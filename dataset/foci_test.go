package dataset_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsort/dataset"
)

const focosDated = "id,DataHora,municipio,frp\n" +
	"1,2023/12/30 17:10:00,Caxias,3\n" +
	"2,2024/08/01 04:20:00,Balsas,7\n" +
	"3,2024-08-15 16:55:00,Codó,1\n" +
	"4,2024/09/02 03:00:00,Grajaú,2\n" +
	"5,,Bacabal,4\n" +
	"6,ontem,Imperatriz,9\n" +
	"7,01/08/2024,Timon,5\n"

// TestFociByMonth_Counts groups a mixed-format fixture by month and year.
func TestFociByMonth_Counts(t *testing.T) {
	t.Parallel()

	tbl, err := dataset.ReadCSV(strings.NewReader(focosDated), "focos")
	require.NoError(t, err)

	sum, err := dataset.FociByMonth(tbl)
	require.NoError(t, err)
	assert.Equal(t, "DataHora", sum.DateColumn)
	assert.Equal(t, 2, sum.Skipped)
	assert.Equal(t, []dataset.MonthCount{
		{Year: 2023, Month: time.December, Count: 1},
		{Year: 2024, Month: time.August, Count: 3},
		{Year: 2024, Month: time.September, Count: 1},
	}, sum.Monthly)
	assert.Equal(t, []dataset.YearCount{{Year: 2023, Count: 1}, {Year: 2024, Count: 4}}, sum.Yearly)
	assert.Equal(t, 5, sum.Total())
}

// TestFociByMonth_StructRecords reads time.Time fields through attributes.
func TestFociByMonth_StructRecords(t *testing.T) {
	t.Parallel()

	type focus struct {
		Data time.Time
	}
	tbl := &dataset.Table{
		Header: []string{"Data"},
		Records: []any{
			focus{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			focus{},
		},
	}
	sum, err := dataset.FociByMonth(tbl)
	require.NoError(t, err)
	assert.Equal(t, []dataset.MonthCount{{Year: 2024, Month: time.March, Count: 1}}, sum.Monthly)
	assert.Equal(t, 1, sum.Skipped)
}

// TestFociByMonth_NoDateColumn rejects tables without a date column.
func TestFociByMonth_NoDateColumn(t *testing.T) {
	t.Parallel()

	tbl, err := dataset.Generate(10, dataset.Random)
	require.NoError(t, err)
	_, err = dataset.FociByMonth(tbl)
	assert.ErrorIs(t, err, dataset.ErrNoDateColumn)

	_, err = dataset.FociByMonth(nil)
	assert.ErrorIs(t, err, dataset.ErrNoDateColumn)

	col, ok := dataset.DateColumn([]string{"lat", "data_pas"})
	assert.True(t, ok)
	assert.Equal(t, "data_pas", col)
}
