package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/greed/internal/greed"
	"github.com/KirkDiggler/greed/internal/referee"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// JSON reports whether structured output was requested
func (o *Output) JSON() bool {
	return o.format == "json"
}

// Print writes data as indented JSON or with its text renderer
func (o *Output) Print(data any, text func(io.Writer)) error {
	if o.JSON() {
		enc := json.NewEncoder(o.w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	}
	text(o.w)
	return nil
}

// Event writes a play-by-play line for a game event. JSON output skips
// events and only prints the final result.
func (o *Output) Event(e referee.Event) {
	if o.JSON() {
		return
	}

	switch e.Kind {
	case referee.EventRoll:
		r := e.Roll
		switch {
		case r.Busted:
			fmt.Fprintf(o.w, "%s rolled %s and busted\n", r.PlayerID, faces(r.Faces))
		case r.HotDice:
			fmt.Fprintf(o.w, "%s rolled %s for %d, hot dice! turn %d, 5 fresh dice\n", r.PlayerID, faces(r.Faces), r.Score, r.TurnScore)
		default:
			fmt.Fprintf(o.w, "%s rolled %s for %d, turn %d, %d left\n", r.PlayerID, faces(r.Faces), r.Score, r.TurnScore, r.DiceAllowed)
		}
	case referee.EventBank:
		t := e.Turn
		fmt.Fprintf(o.w, "%s banked %d, total %d\n", t.PlayerID, t.Banked, t.Total)
		if t.FinalRoundArmed {
			fmt.Fprintf(o.w, "%s reached the winning score, final round!\n", t.PlayerID)
		}
	case referee.EventRejected:
		fmt.Fprintf(o.w, "%s: %v\n", e.PlayerID, e.Err)
	case referee.EventGameOver:
		fmt.Fprintln(o.w, "game over")
	}
}

// Standings writes the final scores, winners marked with *
func (o *Output) Standings(players, winners []greed.Player) {
	won := make(map[string]bool, len(winners))
	for _, w := range winners {
		won[w.ID] = true
	}

	for _, p := range players {
		marker := " "
		if won[p.ID] {
			marker = "*"
		}
		fmt.Fprintf(o.w, "%s %-12s %6d\n", marker, p.ID, p.Score)
	}
}

func faces(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
