package cli

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/mithrel/minid/pkg/minid"
)

type checkResult struct {
	Generated  int
	Unique     int
	Duplicates int
	Elapsed    time.Duration
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Mint many ids and report collisions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			applyConfigFlagOverrides(cmd, app.Cfg, map[string]string{
				"count":   "check.count",
				"workers": "check.workers",
			})
			n, workers := app.Cfg.GetInt("check.count"), app.Cfg.GetInt("check.workers")
			if n <= 0 || workers <= 0 {
				return errors.New("count and workers must be greater than 0")
			}
			app.Log.Info("starting uniqueness check", "count", n, "workers", workers)

			res, err := runCheck(cmd.Context(), app.Gen, n, workers)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "generated %d ids with %d workers in %s: %d unique, %d duplicates\n",
				res.Generated, workers, res.Elapsed.Round(time.Millisecond), res.Unique, res.Duplicates)
			if res.Duplicates > 0 {
				return fmt.Errorf("%d duplicate ids", res.Duplicates)
			}
			return nil
		},
	}
	cmd.Flags().IntP("count", "n", 1_000_000, "number of ids to generate")
	cmd.Flags().IntP("workers", "w", 1, "number of generating goroutines")
	return cmd
}

// runCheck mints n ids across workers goroutines sharing gen and counts
// duplicates.
func runCheck(ctx context.Context, gen *minid.Generator, n, workers int) (checkResult, error) {
	start := time.Now()
	batches := make([][]minid.ID, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		share := n / workers
		if w < n%workers {
			share++
		}
		wg.Add(1)
		go func(w, share int) {
			defer wg.Done()
			batch := make([]minid.ID, 0, share)
			for i := 0; i < share; i++ {
				if i%4096 == 0 && ctx.Err() != nil {
					return
				}
				batch = append(batch, gen.Generate())
			}
			batches[w] = batch
		}(w, share)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return checkResult{}, err
	}

	seen := make(map[minid.ID]struct{}, n)
	res := checkResult{}
	for _, batch := range batches {
		for _, id := range batch {
			res.Generated++
			if _, dup := seen[id]; dup {
				res.Duplicates++
				continue
			}
			seen[id] = struct{}{}
		}
	}
	res.Unique = len(seen)
	res.Elapsed = time.Since(start)
	return res, nil
}
