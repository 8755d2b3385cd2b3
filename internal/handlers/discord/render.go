package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/greed/internal/models"
	"github.com/KirkDiggler/greed/internal/scoring"
	"github.com/KirkDiggler/greed/internal/services/game"
)

// Embed colors
const (
	colorWaiting  = 0x3498db
	colorActive   = 0x00ff00
	colorFinal    = 0xf1c40f
	colorFinished = 0x95a5a6
	colorError    = 0xff0000
)

// Button IDs
const (
	ButtonJoinGame  = "greed_join"
	ButtonLeaveGame = "greed_leave"
	ButtonBeginGame = "greed_begin"
	ButtonRollDice  = "greed_roll"
	ButtonBankTurn  = "greed_bank"
)

var dieFaces = [...]string{"", "⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// notice is a headline shown above the standings, usually flavour text
// about the last action
type notice struct {
	Title   string
	Message string
}

func statusTitle(status models.GameStatus) string {
	switch status {
	case models.GameStatusWaiting:
		return "🎲 Greed: waiting for players"
	case models.GameStatusActive:
		return "🎲 Greed"
	case models.GameStatusFinalRound:
		return "🔥 Greed: final round!"
	case models.GameStatusCompleted:
		return "🏆 Greed: game over"
	case models.GameStatusAbandoned:
		return "🚫 Greed: abandoned"
	}
	return "🎲 Greed"
}

func statusColor(status models.GameStatus) int {
	switch status {
	case models.GameStatusWaiting:
		return colorWaiting
	case models.GameStatusActive:
		return colorActive
	case models.GameStatusFinalRound:
		return colorFinal
	}
	return colorFinished
}

// renderFaces shows dice as unicode die faces followed by their values
func renderFaces(faces []int) string {
	glyphs := make([]string, 0, len(faces))
	values := make([]string, 0, len(faces))
	for _, face := range faces {
		if face >= 1 && face <= 6 {
			glyphs = append(glyphs, dieFaces[face])
		} else {
			glyphs = append(glyphs, "?")
		}
		values = append(values, fmt.Sprintf("%d", face))
	}
	return fmt.Sprintf("%s (%s)", strings.Join(glyphs, " "), strings.Join(values, ", "))
}

// renderBreakdown lists the scoring groups of a roll, or "nothing" on a bust
func renderBreakdown(faces []int) string {
	combos := scoring.Greed{}.Breakdown(faces)
	if len(combos) == 0 {
		return "nothing"
	}

	parts := make([]string, 0, len(combos))
	for _, combo := range combos {
		switch combo.Kind {
		case scoring.ComboTriple:
			parts = append(parts, fmt.Sprintf("three %ds = %d", combo.Face, combo.Points))
		default:
			parts = append(parts, fmt.Sprintf("%d× %d = %d", combo.Count, combo.Face, combo.Points))
		}
	}
	return strings.Join(parts, ", ")
}

func renderPlayers(g *models.Game) string {
	if len(g.Participants) == 0 {
		return "Nobody yet"
	}

	current := g.CurrentParticipant()

	var b strings.Builder
	for _, p := range g.Participants {
		marker := "▫️"
		if current != nil && current.PlayerID == p.PlayerID {
			marker = "▶️"
		}
		if g.IsWinner(p.PlayerID) {
			marker = "🏆"
		}

		fmt.Fprintf(&b, "%s **%s**", marker, p.PlayerName)
		if !g.Status.IsWaiting() {
			fmt.Fprintf(&b, ": %d", p.Score)
			if !p.IsIn {
				b.WriteString(" (not in)")
			}
			if g.Status == models.GameStatusFinalRound && p.HasPlayedFinalTurn {
				b.WriteString(" ✔️")
			}
		}
		if p.PlayerID == g.CreatorID && g.Status.IsWaiting() {
			b.WriteString(" (host)")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderTurn(g *models.Game) string {
	current := g.CurrentParticipant()
	if current == nil {
		return ""
	}

	if !g.HasRolledThisTurn {
		return fmt.Sprintf("It's <@%s>'s turn. Roll %d %s!", current.PlayerID, g.DiceAllowed, diceWord(g.DiceAllowed))
	}
	return fmt.Sprintf("It's <@%s>'s turn with **%d** on the line. Roll %d %s or bank.",
		current.PlayerID, g.TurnScore, g.DiceAllowed, diceWord(g.DiceAllowed))
}

func diceWord(n int) string {
	if n == 1 {
		return "die"
	}
	return "dice"
}

// renderGameEmbed draws the shared game message
func renderGameEmbed(g *models.Game, n *notice) *discordgo.MessageEmbed {
	var description strings.Builder
	if n != nil {
		if n.Title != "" {
			fmt.Fprintf(&description, "**%s**\n", n.Title)
		}
		if n.Message != "" {
			description.WriteString(n.Message)
			description.WriteString("\n")
		}
		description.WriteString("\n")
	}

	switch {
	case g.Status.IsWaiting():
		fmt.Fprintf(&description, "Click **Join** to take a seat. <@%s> starts the game with **Begin**.", g.CreatorID)
	case g.Status.IsInProgress():
		description.WriteString(renderTurn(g))
	case g.Status == models.GameStatusAbandoned:
		description.WriteString("This game was called off. Start another with `/greed start`.")
	}

	return &discordgo.MessageEmbed{
		Title:       statusTitle(g.Status),
		Description: strings.TrimSpace(description.String()),
		Color:       statusColor(g.Status),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   fmt.Sprintf("Players (%d)", len(g.Participants)),
				Value:  renderPlayers(g),
				Inline: false,
			},
		},
	}
}

// renderGameComponents returns the buttons for the game's status. Finished
// games get an empty slice so stale buttons are removed.
func renderGameComponents(g *models.Game) []discordgo.MessageComponent {
	switch {
	case g.Status.IsWaiting():
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Join",
						Style:    discordgo.SuccessButton,
						CustomID: ButtonJoinGame,
						Emoji:    &discordgo.ComponentEmoji{Name: "🎲"},
					},
					discordgo.Button{
						Label:    "Leave",
						Style:    discordgo.SecondaryButton,
						CustomID: ButtonLeaveGame,
					},
					discordgo.Button{
						Label:    "Begin",
						Style:    discordgo.PrimaryButton,
						CustomID: ButtonBeginGame,
						Emoji:    &discordgo.ComponentEmoji{Name: "▶️"},
					},
				},
			},
		}
	case g.Status.IsInProgress():
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    fmt.Sprintf("Roll %d", g.DiceAllowed),
						Style:    discordgo.PrimaryButton,
						CustomID: ButtonRollDice,
						Emoji:    &discordgo.ComponentEmoji{Name: "🎲"},
					},
					discordgo.Button{
						Label:    "Bank",
						Style:    discordgo.SuccessButton,
						CustomID: ButtonBankTurn,
						Disabled: !g.HasRolledThisTurn,
						Emoji:    &discordgo.ComponentEmoji{Name: "💰"},
					},
				},
			},
		}
	}
	return []discordgo.MessageComponent{}
}

// renderGameMessage builds the response data for the game message
func renderGameMessage(g *models.Game, n *notice) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{renderGameEmbed(g, n)},
		Components: renderGameComponents(g),
	}
}

// renderRollNotice describes a roll for the game message
func renderRollNotice(roll *models.Roll, title, flavour string) *notice {
	return &notice{
		Title: title,
		Message: fmt.Sprintf("%s\nRolled %s, scoring %s.",
			flavour, renderFaces(roll.Faces), renderBreakdown(roll.Faces)),
	}
}

// renderLeaderboard draws a game's standings
func renderLeaderboard(lb *models.Leaderboard) *discordgo.MessageEmbed {
	rankEmojis := []string{"🥇", "🥈", "🥉"}

	var b strings.Builder
	if len(lb.Entries) == 0 {
		b.WriteString("No players yet.")
	}
	for _, entry := range lb.Entries {
		rank := fmt.Sprintf("%d.", entry.Rank)
		if entry.Rank <= len(rankEmojis) {
			rank = rankEmojis[entry.Rank-1]
		}

		fmt.Fprintf(&b, "%s **%s**: %d", rank, entry.PlayerName, entry.Score)
		if !entry.IsIn {
			b.WriteString(" (not in)")
		}
		if entry.IsCurrent {
			b.WriteString(" 🎲")
		}
		b.WriteString("\n")
	}

	return &discordgo.MessageEmbed{
		Title:       "📊 Leaderboard",
		Description: b.String(),
		Color:       statusColor(lb.Status),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Game status: %s", lb.Status),
		},
	}
}

// renderStats draws a player's lifetime record
func renderStats(out *game.GetPlayerStatsOutput) *discordgo.MessageEmbed {
	p := out.Player
	stats := out.RollStats
	if stats == nil {
		stats = &models.RollStats{PlayerID: p.ID}
	}

	winRate := "-"
	if p.GamesPlayed > 0 {
		winRate = fmt.Sprintf("%d%%", p.GamesWon*100/p.GamesPlayed)
	}

	bustRate := "-"
	if stats.Rolls > 0 {
		bustRate = fmt.Sprintf("%d%%", stats.Busts*100/stats.Rolls)
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Games", Value: fmt.Sprintf("%d", p.GamesPlayed), Inline: true},
		{Name: "Wins", Value: fmt.Sprintf("%d (%s)", p.GamesWon, winRate), Inline: true},
		{Name: "High score", Value: fmt.Sprintf("%d", p.HighScore), Inline: true},
		{Name: "Rolls", Value: fmt.Sprintf("%d", stats.Rolls), Inline: true},
		{Name: "Busts", Value: fmt.Sprintf("%d (%s)", stats.Busts, bustRate), Inline: true},
		{Name: "Hot dice", Value: fmt.Sprintf("%d", stats.HotDice), Inline: true},
	}

	description := ""
	if !p.LastPlayedAt.IsZero() {
		description = fmt.Sprintf("Last played <t:%d:R>", p.LastPlayedAt.Unix())
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📈 %s", p.Name),
		Description: description,
		Color:       colorActive,
		Fields:      fields,
	}
}
