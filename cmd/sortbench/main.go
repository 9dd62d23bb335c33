// Command sortbench benchmarks the instrumented sorting algorithms on a CSV
// file, a ZIP of CSV files or a generated dataset, and keeps run history.
//
//	sortbench run --zip focos_br_ma_ref_2024.zip --field frp --history runs.db
//	sortbench run --size 5000 --shape nearly-sorted --algorithms merge,quick
//	sortbench history --history runs.db --limit 20
package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlsort/logutil"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger := logutil.Must(logutil.DefaultConfig())
		logger.Error("sortbench failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
