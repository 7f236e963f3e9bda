package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kalepail/asteroids-zk-core/internal/bot"
	"github.com/kalepail/asteroids-zk-core/internal/sim"
	"github.com/kalepail/asteroids-zk-core/internal/tape"
)

func newGenCmd() *cobra.Command {
	var (
		seedStr  string
		frames   uint32
		out      string
		claimant string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Play a session with the heuristic autopilot and record it to a tape",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := parseSeed(seedStr)
			if err != nil {
				return err
			}
			if frames == 0 {
				frames = sim.MaxFramesDefault
			}

			s := sim.New(seed)
			inputs := make([]byte, 0, frames)
			for i := uint32(0); i < frames && !s.GameOver(); i++ {
				snap := s.Snapshot()
				preferred := bot.Heuristic(snap)
				legal := bot.ChooseLegalInput(s, preferred)
				if err := s.StepStrict(sim.InputFromByte(legal)); err != nil {
					return fmt.Errorf("gen: bot produced an illegal input at frame %d: %w", i, err)
				}
				inputs = append(inputs, legal)
			}

			result := s.Result()
			log.Info().
				Uint32("seed", seed).
				Uint32("frames", result.FrameCount).
				Uint32("score", result.Score).
				Msg("recorded session")

			var raw []byte
			if claimant != "" {
				var addr [56]byte
				if len(claimant) != 56 {
					return fmt.Errorf("gen: claimant must be exactly 56 characters, got %d", len(claimant))
				}
				copy(addr[:], claimant)
				raw = tape.SerializeV2(seed, inputs, result.Score, result.RNGState, addr)
			} else {
				var noClaimant [56]byte
				raw = tape.SerializeV2(seed, inputs, result.Score, result.RNGState, noClaimant)
			}

			return os.WriteFile(out, raw, 0o644)
		},
	}

	cmd.Flags().StringVar(&seedStr, "seed", "1", "seed, decimal or 0x-prefixed hex")
	cmd.Flags().Uint32Var(&frames, "frames", 0, "frame budget (default: sim.MaxFramesDefault)")
	cmd.Flags().StringVar(&out, "out", "session.tape", "output tape path")
	cmd.Flags().StringVar(&claimant, "claimant", "", "56-character claimant address to embed")
	return cmd
}
