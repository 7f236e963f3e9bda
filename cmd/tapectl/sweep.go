package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kalepail/asteroids-zk-core/internal/verify"
)

// sweepResult is one tape's outcome, collected under a mutex rather than
// aggregated through a channel since the result set is small and the
// errgroup's Wait already gives us the synchronization point.
type sweepResult struct {
	path  string
	ok    bool
	score uint32
	err   error
}

func newSweepCmd() *cobra.Command {
	var (
		maxFrames uint32
		allowV1   bool
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "sweep <tape-file>...",
		Short: "Verify many tapes concurrently and summarize pass/fail",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				mu      sync.Mutex
				results = make([]sweepResult, 0, len(args))
			)

			g := new(errgroup.Group)
			if workers > 0 {
				g.SetLimit(workers)
			}

			for _, path := range args {
				path := path
				g.Go(func() error {
					res := sweepResult{path: path}
					raw, err := os.ReadFile(path)
					if err != nil {
						res.err = err
					} else if journal, err := verify.Tape(raw, verify.Options{MaxFrames: maxFrames, AllowV1: allowV1}); err != nil {
						res.err = err
					} else {
						res.ok = true
						res.score = journal.FinalScore
					}

					mu.Lock()
					results = append(results, res)
					mu.Unlock()
					return nil // one bad tape must not cancel the rest of the sweep
				})
			}
			_ = g.Wait()

			var passed, failed int
			for _, r := range results {
				if r.ok {
					passed++
					log.Info().Str("file", r.path).Uint32("score", r.score).Msg("pass")
				} else {
					failed++
					log.Warn().Str("file", r.path).Err(r.err).Msg("fail")
				}
			}
			fmt.Printf("%d passed, %d failed, %d total\n", passed, failed, len(results))
			if failed > 0 {
				return fmt.Errorf("sweep: %d of %d tapes failed verification", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().Uint32Var(&maxFrames, "max-frames", 0, "frame budget (default: sim.MaxFramesDefault)")
	cmd.Flags().BoolVar(&allowV1, "allow-v1", false, "permit legacy v1 tapes without a claimant")
	cmd.Flags().IntVar(&workers, "workers", 0, "max concurrent verifications (0 = unlimited)")
	return cmd
}
