package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlsort/dataset"
)

var errNoInput = errors.New("sortbench: foci needs --csv or --zip (or dataset.csv / dataset.zip)")

func newFociCmd(g *globalFlags) *cobra.Command {
	var (
		csvFiles, zipFiles []string
		limit              int
	)
	cmd := &cobra.Command{
		Use:   "foci",
		Short: "Count fire foci per month and per year from the date column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := g.load(cmd)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			applyInputFlags(cmd, cfg, csvFiles, zipFiles)
			if cmd.Flags().Changed("limit") {
				cfg.Dataset.Limit = limit
			}
			if len(cfg.Dataset.Files()) == 0 {
				return errNoInput
			}

			tbl, err := loadTable(cfg)
			if err != nil {
				return err
			}
			sum, err := dataset.FociByMonth(tbl)
			if err != nil {
				return err
			}
			logger.Info("foci counted",
				zap.String("source", tbl.Source),
				zap.String("date_column", sum.DateColumn),
				zap.Int("counted", sum.Total()),
				zap.Int("skipped", sum.Skipped),
			)
			return writeFoci(cmd.OutOrStdout(), sum)
		},
	}
	addInputFlags(cmd.Flags(), &csvFiles, &zipFiles)
	cmd.Flags().IntVar(&limit, "limit", 0, "read at most this many rows across all files (0 = all)")
	return cmd
}

func writeFoci(w io.Writer, sum *dataset.FociSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "YEAR\tMONTH\tFOCI\t")
	for _, m := range sum.Monthly {
		fmt.Fprintf(tw, "%d\t%02d\t%s\t\n", m.Year, int(m.Month), humanize.Comma(int64(m.Count)))
	}
	fmt.Fprintln(tw, "\t\t\t")
	fmt.Fprintln(tw, "YEAR\t\tTOTAL\t")
	for _, y := range sum.Yearly {
		fmt.Fprintf(tw, "%d\t\t%s\t\n", y.Year, humanize.Comma(int64(y.Count)))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\ndate column %q, %s rows skipped\n", sum.DateColumn, humanize.Comma(int64(sum.Skipped)))
	return err
}
