package key_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/lvlsort/key"
)

// benchmarkExtract runs Extract over a prepared record set.
// It resets the timer before entering the loop.
func benchmarkExtract(b *testing.B, recs []any, field string) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_ = key.Extract(recs[i%len(recs)], field)
	}
}

// BenchmarkExtract_MapNumericString measures parsing numeric strings from map rows.
func BenchmarkExtract_MapNumericString(b *testing.B) {
	recs := make([]any, 256)
	for i := range recs {
		recs[i] = map[string]any{"v": strconv.Itoa(i)}
	}
	benchmarkExtract(b, recs, "v")
}

// BenchmarkExtract_MapText measures the text fallback path.
func BenchmarkExtract_MapText(b *testing.B) {
	recs := make([]any, 256)
	for i := range recs {
		recs[i] = map[string]any{"v": "Municipio-" + strconv.Itoa(i)}
	}
	benchmarkExtract(b, recs, "v")
}

// BenchmarkExtract_Struct measures reflect-based attribute lookup.
func BenchmarkExtract_Struct(b *testing.B) {
	type row struct {
		ID    int
		Value float64 `sort:"value"`
	}
	recs := make([]any, 256)
	for i := range recs {
		recs[i] = row{ID: i, Value: float64(i) / 3}
	}
	benchmarkExtract(b, recs, "value")
}
