// Package lvlsort is a small laboratory for comparing classic sorting
// algorithms on heterogeneous records: CSV rows, maps, structs or bare
// values, keyed by a named field.
//
// What is inside?
//
//	key/      - key extraction (numeric, text or absent) and the total order
//	sorting/  - Bubble, Insertion, Merge and Quick, each returning a timed
//	            Result with comparison and move counters
//	dataset/  - synthetic generators (random, sorted, reversed, nearly-sorted,
//	            few-unique) and CSV / ZIP loaders
//	bench/    - Runner, Report, ranked leaderboard, text table, SQLite history
//	config/   - YAML / TOML settings for the sortbench command
//	logutil/  - zap logger construction with optional rotating file output
//	cmd/sortbench - the command-line front end
//
// Quick example:
//
//	recs := []any{
//		map[string]any{"frp": "12.5"},
//		map[string]any{"frp": 3},
//		map[string]any{"frp": "7"},
//	}
//	res := sorting.Merge(recs, "frp")
//	// res.Records: 3, 7, 12.5   res.Comparisons: 3   res.Moves: 5
//
// Keys never fail: a missing field, an empty string or a value that cannot be
// read becomes an absent key, which compares as neither greater nor less than
// anything. Numbers order before text; text compares case-insensitively.
//
//	go get github.com/katalvlaran/lvlsort
package lvlsort
