package main

import (
	"bufio"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/homier/primehash/internal/config"
	"github.com/homier/primehash/internal/logutil"
)

type app struct {
	configPath string
	cfg        config.Config
	logger     *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:           "primehash",
		Short:         "Inspect prime-sized hash tables",
		Long:          "Load words into an open addressing or chained hash table and report how they spread",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a TOML config file")
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&a.cfg.Table, "table", a.cfg.Table, "collision resolution: open or chain")
	flags.StringVar(&a.cfg.Hash, "hash", a.cfg.Hash, "hash function: maphash, xxhash, sum or weighted")
	flags.IntVar(&a.cfg.Capacity, "capacity", a.cfg.Capacity, "initial table capacity")

	cmd.AddCommand(
		a.modeCommand(),
		a.statsCommand(),
	)

	return cmd
}

// Loads the config file, if any, and lets explicitly set flags override it.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		fileCfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if !flags.Changed("log-level") {
			a.cfg.LogLevel = fileCfg.LogLevel
		}
		if !flags.Changed("table") {
			a.cfg.Table = fileCfg.Table
		}
		if !flags.Changed("hash") {
			a.cfg.Hash = fileCfg.Hash
		}
		if !flags.Changed("capacity") {
			a.cfg.Capacity = fileCfg.Capacity
		}
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	logger, err := logutil.New(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger

	return nil
}

// Reads whitespace separated words from the given files, or stdin if none.
func readWords(cmd *cobra.Command, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return scanWords(cmd.InOrStdin(), nil)
	}

	var words []string
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}

		words, err = scanWords(f, words)
		f.Close()

		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
	}

	return words, nil
}

func scanWords(r io.Reader, words []string) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	for sc.Scan() {
		words = append(words, sc.Text())
	}

	return words, sc.Err()
}
