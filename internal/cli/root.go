// Package cli implements the greed command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/greed/internal/greed"
)

// options are the flags shared by every command
type options struct {
	Output       string
	Verbose      bool
	EntryScore   int
	WinningScore int
}

func (o *options) rules() *greed.Rules {
	return &greed.Rules{
		EntryScore:   o.EntryScore,
		WinningScore: o.WinningScore,
	}
}

func (o *options) logger(cmd *cobra.Command) *zerolog.Logger {
	level := zerolog.WarnLevel
	if o.Verbose {
		level = zerolog.DebugLevel
	}
	l := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
	return &l
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{
		Output:       "text",
		EntryScore:   greed.DefaultEntryScore,
		WinningScore: greed.DefaultWinningScore,
	}

	rootCmd := &cobra.Command{
		Use:   "greed",
		Short: "Score, play and simulate the Greed dice game",
		Long: `greed plays the Greed dice game in a terminal.

Roll five dice, bank points or push your luck. The first player to bank the
winning score starts the final round and everybody gets one last turn.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Output != "text" && opts.Output != "json" {
				return fmt.Errorf("output must be text or json, got %q", opts.Output)
			}
			if opts.EntryScore <= 0 || opts.WinningScore <= opts.EntryScore {
				return fmt.Errorf("entry score must be positive and below the winning score")
			}
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", opts.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "Verbose logging")
	rootCmd.PersistentFlags().IntVar(&opts.EntryScore, "entry-score", opts.EntryScore, "Turn score needed to get in")
	rootCmd.PersistentFlags().IntVar(&opts.WinningScore, "winning-score", opts.WinningScore, "Banked score that starts the final round")

	rootCmd.AddCommand(newScoreCmd(opts))
	rootCmd.AddCommand(newPlayCmd(opts))
	rootCmd.AddCommand(newSimulateCmd(opts))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
