package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsort/bench"
)

func newHistoryCmd(g *globalFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the most recent saved runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := g.load(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			if cfg.History.Path == "" {
				return errNoHistory
			}

			store, err := bench.OpenStore(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return writeHistory(cmd.OutOrStdout(), runs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of rows to show (0 = all)")
	return cmd
}

func writeHistory(w io.Writer, runs []bench.Run) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tSOURCE\tFIELD\tALGORITHM\tINPUT\tRECORDS\tDROPPED\tCOMPARISONS\tMOVES\tTIME")
	for _, r := range runs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%.6fs\n",
			r.ID,
			humanize.Time(r.StartedAt),
			r.Source,
			r.Field,
			r.Algorithm,
			humanize.Comma(int64(r.Input)),
			humanize.Comma(int64(r.Records)),
			humanize.Comma(int64(r.Dropped)),
			humanize.Comma(r.Comparisons),
			humanize.Comma(r.Moves),
			r.Elapsed.Seconds(),
		)
	}
	return tw.Flush()
}
