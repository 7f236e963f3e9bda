package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kalepail/asteroids-zk-core/internal/guest"
)

func newGuestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guest",
		Short: "Run the guest's framed-input verification path against stdin",
		Long: "Reads the same length-prefixed input a zkVM host would pass to the " +
			"guest binary (max_frames u32 LE, tape_len u32 LE, padded tape) from " +
			"stdin, and prints the resulting journal fields on success.",
		RunE: func(cmd *cobra.Command, args []string) error {
			journal, err := guest.Run(os.Stdin)
			if err != nil {
				log.Error().Err(err).Msg("guest aborted: no receipt would be produced")
				return err
			}

			log.Info().
				Uint32("seed", journal.Seed).
				Uint32("frames", journal.FrameCount).
				Uint32("score", journal.FinalScore).
				Uint32("rng_state", journal.FinalRNGState).
				Uint32("tape_checksum", journal.TapeChecksum).
				Uint32("rules_digest", journal.RulesDigest).
				Str("claimant", journal.ClaimantAddress).
				Msg("journal committed")
			return nil
		},
	}
}
