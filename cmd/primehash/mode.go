package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/homier/primehash"
)

func (a *app) modeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mode [file...]",
		Short: "Print the most frequent words",
		Long:  "Count words with a chained hash table and print the most frequent ones, ties in the order they reached the top count",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := readWords(cmd, args)
			if err != nil {
				return err
			}

			mode, freq := primehash.FindMode(words,
				primehash.WithHashFunc(a.cfg.HashFunc()),
				primehash.WithResizeHook[string](a.logResize),
			)

			a.logger.Debug("mode computed",
				zap.Int("words", len(words)),
				zap.Int("modes", len(mode)),
				zap.Int("frequency", freq),
			)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "mode: %s\nfrequency: %d\n", strings.Join(mode, " "), freq)
			return err
		},
	}
}

func (a *app) logResize(from, to int) {
	a.logger.Debug("table resized", zap.Int("from", from), zap.Int("to", to))
}
