package bench

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

// WriteTable renders the report as an aligned text table in run order.
// The µs column repeats the time on the scale of the counters.
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "source: %s\tfield: %s\trecords: %s\t\n",
		r.Source, r.Field, humanize.Comma(int64(r.Input)))
	fmt.Fprintln(tw, "ALGORITHM\tTIME\tTIME (µs)\tCOMPARISONS\tMOVES\tDROPPED\t")
	for _, e := range r.Entries {
		fmt.Fprintf(tw, "%s\t%.6fs\t%s\t%s\t%s\t%s\t\n",
			e.Algorithm,
			e.Elapsed.Seconds(),
			humanize.Comma(int64(e.Micros())),
			humanize.Comma(e.Comparisons),
			humanize.Comma(e.Moves),
			humanize.Comma(int64(e.Dropped)),
		)
	}
	return tw.Flush()
}
