package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// pick returns a random entry of options
func (s *service) pick(options []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return options[s.rand.Intn(len(options))]
}

// tonedMessages holds the variants of one message keyed by tone. Every set
// carries at least ToneFunny and ToneNeutral variants.
type tonedMessages map[MessageTone][]string

// pickToned returns a variant in the preferred tone, or a funny one when
// the preferred tone has none
func (s *service) pickToned(messages tonedMessages, preferred MessageTone) (string, MessageTone) {
	tone := preferred
	if len(messages[tone]) == 0 {
		tone = ToneFunny
	}
	return s.pick(messages[tone]), tone
}

// GetJoinGameMessage returns a message for when a player joins a game
func (s *service) GetJoinGameMessage(ctx context.Context, input *GetJoinGameMessageInput) (*GetJoinGameMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages tonedMessages
	switch {
	case !input.AlreadyJoined:
		messages = tonedMessages{
			ToneFunny: {
				fmt.Sprintf("%s pulls up a chair. Five dice, no mercy.", input.PlayerName),
				fmt.Sprintf("A new challenger appears! Welcome, %s.", input.PlayerName),
				fmt.Sprintf("%s joins the table. Greed is good, until it isn't.", input.PlayerName),
			},
			ToneEncouraging: {
				fmt.Sprintf("%s is in. May your ones be plentiful and your fives be many.", input.PlayerName),
			},
			ToneNeutral: {
				fmt.Sprintf("%s joined the game.", input.PlayerName),
			},
		}
	case input.GameStatus.IsInProgress():
		messages = tonedMessages{
			ToneFunny: {
				"Still here, still greedy. The game is already under way.",
			},
			ToneNeutral: {
				"You're already playing! Check the table for whose turn it is.",
			},
		}
	case input.GameStatus.IsFinished():
		messages = tonedMessages{
			ToneFunny: {
				"The dice are cold. Open a new game to warm them up.",
			},
			ToneNeutral: {
				"That game is over. Start another one if you're feeling lucky.",
			},
		}
	default:
		messages = tonedMessages{
			ToneFunny: {
				"You're already in this game! Did you forget?",
				"Double-dipping? You're already seated.",
			},
			ToneSarcastic: {
				"Joining twice won't get you twice the dice.",
			},
			ToneNeutral: {
				"Patience! You're on the roster, waiting for the creator to begin.",
			},
		}
	}

	message, tone := s.pickToned(messages, input.PreferredTone)
	return &GetJoinGameMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

// GetRollResultMessage returns a message for a player's roll
func (s *service) GetRollResultMessage(ctx context.Context, input *GetRollResultMessageInput) (*GetRollResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := input.PlayerName

	switch {
	case input.Busted:
		return &GetRollResultMessageOutput{
			Title: s.pick([]string{"Bust!", "Greed Strikes!", "Nothing!", "Ouch."}),
			Message: s.pick([]string{
				fmt.Sprintf("%s rolled nothing and loses the turn.", name),
				fmt.Sprintf("Not a single point. %s walks away empty-handed.", name),
				fmt.Sprintf("%s pushed their luck and it pushed back.", name),
				fmt.Sprintf("The dice have spoken, and they said no, %s.", name),
			}),
			Tone: ToneSarcastic,
		}, nil

	case input.HotDice:
		return &GetRollResultMessageOutput{
			Title: s.pick([]string{"Hot Dice!", "Clean Sweep!", "All Five Back!"}),
			Message: s.pick([]string{
				fmt.Sprintf("Every die scored! %s has %d on the line and a fresh set of dice.", name, input.TurnScore),
				fmt.Sprintf("%s scored %d and picks up all five dice again. Turn total: %d.", name, input.Score, input.TurnScore),
			}),
			Tone: ToneCelebration,
		}, nil

	case input.Score >= 1000:
		return &GetRollResultMessageOutput{
			Title: s.pick([]string{"Big Roll!", "Jackpot!", "Triple Ones?!"}),
			Message: fmt.Sprintf("%s rolled %d! Turn total %d with %d %s left to roll.",
				name, input.Score, input.TurnScore, input.DiceAllowed, pluralDice(input.DiceAllowed)),
			Tone: ToneCelebration,
		}, nil

	default:
		return &GetRollResultMessageOutput{
			Title: s.pick([]string{"Scored!", "Points!", "Still Alive"}),
			Message: s.pick([]string{
				fmt.Sprintf("%s scores %d. Turn total %d with %d %s left. Roll again or bank?", name, input.Score, input.TurnScore, input.DiceAllowed, pluralDice(input.DiceAllowed)),
				fmt.Sprintf("%d points for %s, %d this turn. %d %s left to risk.", input.Score, name, input.TurnScore, input.DiceAllowed, pluralDice(input.DiceAllowed)),
			}),
			Tone: ToneNeutral,
		}, nil
	}
}

// GetBankMessage returns a message for a banked turn
func (s *service) GetBankMessage(ctx context.Context, input *GetBankMessageInput) (*GetBankMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.FinalRoundArmed {
		return &GetBankMessageOutput{
			Title: "Final Round!",
			Message: fmt.Sprintf("%s banks %d and reaches %d! Everyone gets one last turn to catch up.",
				input.PlayerName, input.Banked, input.Total),
			Tone: ToneCelebration,
		}, nil
	}

	return &GetBankMessageOutput{
		Title: s.pick([]string{"Banked", "Safe!", "Cashing Out"}),
		Message: s.pick([]string{
			fmt.Sprintf("%s banks %d for a total of %d.", input.PlayerName, input.Banked, input.Total),
			fmt.Sprintf("%s plays it safe. +%d, now at %d.", input.PlayerName, input.Banked, input.Total),
			fmt.Sprintf("A wise retreat. %s locks in %d (total %d).", input.PlayerName, input.Banked, input.Total),
		}),
		Tone: ToneEncouraging,
	}, nil
}

// GetGameOverMessage returns a message announcing the winners
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch len(input.WinnerNames) {
	case 0:
		return &GetGameOverMessageOutput{
			Title:   "Game Over",
			Message: "The game is over.",
			Tone:    ToneNeutral,
		}, nil
	case 1:
		return &GetGameOverMessageOutput{
			Title: "Game Over!",
			Message: s.pick([]string{
				fmt.Sprintf("%s wins with %d points!", input.WinnerNames[0], input.Score),
				fmt.Sprintf("All hail %s, champion of greed, with %d points!", input.WinnerNames[0], input.Score),
			}),
			Tone: ToneCelebration,
		}, nil
	default:
		return &GetGameOverMessageOutput{
			Title:   "It's a Tie!",
			Message: fmt.Sprintf("%s share the win with %d points each!", strings.Join(input.WinnerNames, " and "), input.Score),
			Tone:    ToneCelebration,
		}, nil
	}
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages tonedMessages
	switch input.ErrorType {
	case ErrorTypeGameNotFound:
		messages = tonedMessages{
			ToneFunny:   {"No dice on this table yet. Try /greed start."},
			ToneNeutral: {"There's no game here. Start one with /greed start."},
		}
	case ErrorTypeGameStarted:
		messages = tonedMessages{
			ToneFunny:   {"Too late, hotshot! The dice are already in motion."},
			ToneNeutral: {"This game is already rolling! Catch the next one."},
		}
	case ErrorTypeNotStarted:
		messages = tonedMessages{
			ToneFunny:   {"Easy there! Nobody has hit Begin yet."},
			ToneNeutral: {"The game hasn't started yet. Wait for the creator to hit Begin."},
		}
	case ErrorTypeGameFinished:
		messages = tonedMessages{
			ToneFunny:   {"Game over! But you can start a new one if you're still greedy."},
			ToneNeutral: {"This game is already over. Start a new one!"},
		}
	case ErrorTypeGameFull:
		messages = tonedMessages{
			ToneFunny:   {"No room at the inn! This game is at capacity."},
			ToneNeutral: {"This table is full! Wait for the next game."},
		}
	case ErrorTypeGameExists:
		messages = tonedMessages{
			ToneFunny:   {"There's already a game in this channel. Join that one!"},
			ToneNeutral: {"One game per channel. Finish or abandon the current one first."},
		}
	case ErrorTypeNotYourTurn:
		messages = tonedMessages{
			ToneFunny:     {"Hold your horses! Someone else has the dice."},
			ToneSarcastic: {"Bold move, rolling on someone else's turn. Denied."},
			ToneNeutral:   {"Patience! It's not your turn yet."},
		}
	case ErrorTypeNotInGame:
		messages = tonedMessages{
			ToneFunny:   {"Spectators don't get dice. Join the next game!"},
			ToneNeutral: {"You're not playing in this game."},
		}
	case ErrorTypeNotCreator:
		messages = tonedMessages{
			ToneFunny:   {"Nice try, but that button belongs to whoever opened the table."},
			ToneNeutral: {"Only the player who opened the game can do that."},
		}
	case ErrorTypeNotEnough:
		messages = tonedMessages{
			ToneFunny:       {"Playing alone? Get a friend to join first."},
			ToneEncouraging: {"Almost there! One more player and the dice can fly."},
			ToneNeutral:     {"Greed needs at least two players. Find a rival!"},
		}
	case ErrorTypeNotRolled:
		messages = tonedMessages{
			ToneFunny:   {"Nothing to bank yet. Roll those dice!"},
			ToneNeutral: {"You have to roll before you can bank."},
		}
	case ErrorTypeNotIn:
		messages = tonedMessages{
			ToneFunny:       {"Not in yet! Bank 300 or more in a single turn first."},
			ToneEncouraging: {"Keep rolling! 300 in one turn gets you on the board."},
			ToneNeutral:     {"You need at least 300 in one turn to get in."},
		}
	default:
		messages = tonedMessages{
			ToneFunny:   {"Oops! The dice rolled off the table. Try again."},
			ToneNeutral: {"Something went wrong! Try again."},
		}
	}

	message, tone := s.pickToned(messages, input.PreferredTone)
	return &GetErrorMessageOutput{
		Message: message,
		Tone:    tone,
	}, nil
}

func pluralDice(n int) string {
	if n == 1 {
		return "die"
	}
	return "dice"
}
