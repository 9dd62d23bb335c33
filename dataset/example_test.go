package dataset_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlsort/dataset"
)

// ExampleGenerate builds a small reversed dataset.
func ExampleGenerate() {
	tbl, err := dataset.Generate(4, dataset.Reversed, dataset.WithField("frp"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	var vals []any
	for _, r := range tbl.Records {
		vals = append(vals, r.(map[string]any)["frp"])
	}
	fmt.Println(vals)
	fmt.Println(tbl.Source)
	// Output:
	// [3 2 1 0]
	// generated:reversed(n=4,seed=1)
}

// ExampleReadCSV turns CSV rows into records keyed by the header.
func ExampleReadCSV() {
	in := "municipio,frp\nCaxias,12.5\nBalsas,3\n"
	tbl, _ := dataset.ReadCSV(strings.NewReader(in), "inline")
	fmt.Println(tbl.Header, tbl.Len())
	fmt.Println(tbl.Records[1])
	// Output:
	// [municipio frp] 2
	// map[frp:3 municipio:Balsas]
}
