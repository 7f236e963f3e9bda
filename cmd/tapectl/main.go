// Command tapectl generates, inspects, and verifies Asteroids replay
// tapes — the binary format a play session is recorded into and a
// zkVM guest later checks before committing a proof journal.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("tapectl failed")
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "tapectl",
		Short:         "Generate, inspect, and verify Asteroids replay tapes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newGenCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newGuestCmd())
	root.AddCommand(newSweepCmd())

	return root
}
