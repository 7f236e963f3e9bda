package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kalepail/asteroids-zk-core/internal/tape"
)

func newInspectCmd() *cobra.Command {
	var allowV1 bool

	cmd := &cobra.Command{
		Use:   "inspect <tape-file>",
		Short: "Print a tape's header and footer without replaying it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}

			tp, err := tape.Parse(raw, tape.Options{AllowV1: allowV1})
			if err != nil {
				return err
			}

			fmt.Printf("version:       %d\n", tp.Header.Version)
			fmt.Printf("seed:          %d (0x%08X)\n", tp.Header.Seed, tp.Header.Seed)
			fmt.Printf("frame_count:   %d\n", tp.Header.FrameCount)
			fmt.Printf("claimant:      %q\n", tp.ClaimantString())
			fmt.Printf("final_score:   %d\n", tp.Footer.FinalScore)
			fmt.Printf("final_rng:     0x%08X\n", tp.Footer.FinalRNGState)
			fmt.Printf("crc32:         0x%08X\n", tp.Footer.CRC32)
			return nil
		},
	}

	cmd.Flags().BoolVar(&allowV1, "allow-v1", true, "permit legacy v1 tapes without a claimant")
	return cmd
}
