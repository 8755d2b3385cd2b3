package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/greed/internal/greed"
	"github.com/KirkDiggler/greed/internal/scoring"
)

// scoreResult is the outcome of scoring one roll
type scoreResult struct {
	Faces  []int           `json:"faces"`
	Score  int             `json:"score"`
	Combos []scoring.Combo `json:"combos"`
	Bust   bool            `json:"bust"`

	// Reroll is how many dice the next roll uses, 0 on a bust
	Reroll int `json:"reroll"`
}

func scoreFaces(values []int) *scoreResult {
	result := &scoreResult{
		Faces:  values,
		Score:  scoring.Default.Score(values),
		Combos: scoring.Greed{}.Breakdown(values),
	}
	if result.Combos == nil {
		result.Combos = []scoring.Combo{}
	}

	if result.Score == 0 {
		result.Bust = true
	} else {
		result.Reroll = greed.RerollCount(values)
	}
	return result
}

func parseFaces(args []string) ([]int, error) {
	if len(args) > greed.DefaultDiceCount {
		return nil, fmt.Errorf("at most %d dice, got %d", greed.DefaultDiceCount, len(args))
	}

	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil || v < 1 || v > 6 {
			return nil, fmt.Errorf("invalid die %q: must be 1-6", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

func newScoreCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "score <face> [face...]",
		Short: "Score a roll of up to five dice",
		Example: `  greed score 5 1 3 4 1
  greed score 2 2 2 1 5 -o json`,
		Args: cobra.RangeArgs(1, greed.DefaultDiceCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFaces(args)
			if err != nil {
				return err
			}

			result := scoreFaces(values)
			out := NewOutput(opts.Output, cmd.OutOrStdout())
			return out.Print(result, func(w io.Writer) {
				if result.Bust {
					fmt.Fprintf(w, "%s scores nothing: bust\n", faces(values))
					return
				}

				fmt.Fprintf(w, "%s scores %d\n", faces(values), result.Score)
				for _, c := range result.Combos {
					switch c.Kind {
					case scoring.ComboTriple:
						fmt.Fprintf(w, "  three %ds    %5d\n", c.Face, c.Points)
					default:
						fmt.Fprintf(w, "  %d x %d       %5d\n", c.Count, c.Face, c.Points)
					}
				}
				fmt.Fprintf(w, "roll %d next\n", result.Reroll)
			})
		},
	}
}
