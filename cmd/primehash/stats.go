package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/homier/primehash"
	"github.com/homier/primehash/internal/config"
)

// counter is the part of both table variants the stats command needs.
type counter interface {
	Put(key string, value int)
	Get(key string) (int, bool)
	Stats() primehash.Stats
}

func (a *app) newCounter() counter {
	opts := []primehash.Option[string]{
		primehash.WithHashFunc(a.cfg.HashFunc()),
		primehash.WithResizeHook[string](a.logResize),
	}

	if a.cfg.Table == config.TableChain {
		return primehash.NewChain[string, int](a.cfg.Capacity, opts...)
	}

	return primehash.NewOpen[string, int](a.cfg.Capacity, opts...)
}

func (a *app) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file...]",
		Short: "Print table statistics after loading words",
		Long:  "Count every word in the configured hash table and print its size, capacity, load and bucket usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := readWords(cmd, args)
			if err != nil {
				return err
			}

			c := a.newCounter()
			for _, w := range words {
				n, _ := c.Get(w)
				c.Put(w, n+1)
			}

			stats := c.Stats()
			a.logger.Info("words loaded",
				zap.String("table", a.cfg.Table),
				zap.String("hash", a.cfg.Hash),
				zap.Int("words", len(words)),
			)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 1, ' ', 0)
			fmt.Fprintf(tw, "table:\t%s\n", a.cfg.Table)
			fmt.Fprintf(tw, "hash:\t%s\n", a.cfg.Hash)
			fmt.Fprintf(tw, "size:\t%d\n", stats.Size)
			fmt.Fprintf(tw, "capacity:\t%d\n", stats.Capacity)
			fmt.Fprintf(tw, "load:\t%.2f\n", stats.Load)
			fmt.Fprintf(tw, "empty buckets:\t%d\n", stats.EmptyBuckets)

			if a.cfg.Table == config.TableChain {
				fmt.Fprintf(tw, "longest chain:\t%d\n", stats.LongestChain)
			} else {
				fmt.Fprintf(tw, "tombstones:\t%d\n", stats.Tombstones)
			}

			return tw.Flush()
		},
	}
}
