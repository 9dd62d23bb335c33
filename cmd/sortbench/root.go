package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlsort/config"
	"github.com/katalvlaran/lvlsort/logutil"
)

type globalFlags struct {
	config   string
	logLevel string
	history  string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "sortbench",
		Short:         "Compare bubble, insertion, merge and quick sort on real or generated records",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&g.config, "config", "", "config file (.yaml, .yml or .toml); default searches configs/sortbench.yaml")
	pf.StringVar(&g.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	pf.StringVar(&g.history, "history", "", "SQLite file holding run history")

	root.AddCommand(newRunCmd(g), newHistoryCmd(g), newFociCmd(g))
	return root
}

// load reads the config file and applies the persistent flags.
func (g *globalFlags) load(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(g.config)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = g.logLevel
	}
	if cmd.Flags().Changed("history") {
		cfg.History.Path = g.history
	}

	logger, err := logutil.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

var errNoHistory = errors.New("sortbench: no history file; pass --history or set history.path")
