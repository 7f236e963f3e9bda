package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kalepail/asteroids-zk-core/internal/verify"
)

func newVerifyCmd() *cobra.Command {
	var (
		maxFrames uint32
		allowV1   bool
	)

	cmd := &cobra.Command{
		Use:   "verify <tape-file>",
		Short: "Replay a tape and check its claimed terminal state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("verify: %w", err)
			}

			journal, err := verify.Tape(raw, verify.Options{MaxFrames: maxFrames, AllowV1: allowV1})
			if err != nil {
				log.Error().Err(err).Str("file", args[0]).Msg("tape rejected")
				return err
			}

			log.Info().
				Uint32("seed", journal.Seed).
				Uint32("frames", journal.FrameCount).
				Uint32("score", journal.FinalScore).
				Uint32("rules_digest", journal.RulesDigest).
				Str("claimant", journal.ClaimantAddress).
				Msg("tape verified")
			return nil
		},
	}

	cmd.Flags().Uint32Var(&maxFrames, "max-frames", 0, "frame budget (default: sim.MaxFramesDefault)")
	cmd.Flags().BoolVar(&allowV1, "allow-v1", false, "permit legacy v1 tapes without a claimant")
	return cmd
}
