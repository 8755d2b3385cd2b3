package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/greed/internal/dice"
	"github.com/KirkDiggler/greed/internal/greed"
	"github.com/KirkDiggler/greed/internal/referee"
)

// gameResult is the JSON form of a finished game
type gameResult struct {
	Players []greed.Player `json:"players"`
	Winners []string       `json:"winners"`
	Rolls   int            `json:"rolls"`
}

func toGameResult(r *referee.Result) *gameResult {
	out := &gameResult{
		Players: r.Players,
		Rolls:   r.Rolls,
	}
	for _, w := range r.Winners {
		out.Winners = append(out.Winners, w.ID)
	}
	return out
}

func parsePlayers(list []string) ([]string, error) {
	var players []string
	for _, p := range list {
		if p = strings.TrimSpace(p); p != "" {
			players = append(players, p)
		}
	}
	if len(players) < greed.MinPlayers {
		return nil, errors.New("need at least two players, e.g. --players alice,bob")
	}
	return players, nil
}

func printResult(out *Output, result *referee.Result) error {
	return out.Print(toGameResult(result), func(w io.Writer) {
		fmt.Fprintf(w, "\nfinal standings after %d rolls\n", result.Rolls)
		out.Standings(result.Players, result.Winners)
	})
}

func newPlayCmd(opts *options) *cobra.Command {
	var (
		players []string
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a hot-seat game in the terminal",
		Long: `Play a game with everyone sharing one terminal.

After each scoring roll the current player answers r to roll again or b to
bank. The first roll of every turn is automatic.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parsePlayers(players)
			if err != nil {
				return err
			}

			out := NewOutput(opts.Output, cmd.OutOrStdout())
			ref, err := referee.New(&referee.Config{
				Roller:   dice.New(&dice.Config{Seed: seed}),
				Rules:    opts.rules(),
				Default:  referee.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout()),
				Observer: out.Event,
				Logger:   opts.logger(cmd),
			})
			if err != nil {
				return err
			}

			result, err := ref.Play(cmd.Context(), ids)
			if err != nil {
				return err
			}
			return printResult(out, result)
		},
	}

	cmd.Flags().StringSliceVarP(&players, "players", "p", nil, "Comma separated player names in turn order")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Dice seed, 0 for random")

	return cmd
}

func newSimulateCmd(opts *options) *cobra.Command {
	var (
		players []string
		seed    int64
		bankAt  int
		games   int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play automatic games where everyone banks at a threshold",
		Example: `  greed simulate --players alice,bob --bank-at 350 --seed 7
  greed simulate --players a,b,c --games 1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parsePlayers(players)
			if err != nil {
				return err
			}
			if games < 1 {
				return errors.New("games must be at least 1")
			}

			out := NewOutput(opts.Output, cmd.OutOrStdout())
			cfg := &referee.Config{
				Roller:  dice.New(&dice.Config{Seed: seed}),
				Rules:   opts.rules(),
				Default: referee.NewThreshold(bankAt),
				Logger:  opts.logger(cmd),
			}
			if games == 1 {
				cfg.Observer = out.Event
			}

			ref, err := referee.New(cfg)
			if err != nil {
				return err
			}

			if games == 1 {
				result, err := ref.Play(cmd.Context(), ids)
				if err != nil {
					return err
				}
				return printResult(out, result)
			}

			wins := make(map[string]int, len(ids))
			for i := 0; i < games; i++ {
				result, err := ref.Play(cmd.Context(), ids)
				if err != nil {
					return fmt.Errorf("game %d: %w", i+1, err)
				}
				for _, w := range result.Winners {
					wins[w.ID]++
				}
			}

			return out.Print(wins, func(w io.Writer) {
				fmt.Fprintf(w, "wins over %d games\n", games)
				for _, id := range ids {
					fmt.Fprintf(w, "  %-12s %6d\n", id, wins[id])
				}
			})
		},
	}

	cmd.Flags().StringSliceVarP(&players, "players", "p", nil, "Comma separated player names in turn order")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Dice seed, 0 for random")
	cmd.Flags().IntVar(&bankAt, "bank-at", referee.DefaultBankAt, "Turn score at which every player banks")
	cmd.Flags().IntVar(&games, "games", 1, "Number of games to play")

	return cmd
}
