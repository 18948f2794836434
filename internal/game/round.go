package game

import (
	"errors"
	"fmt"

	"github.com/lox/rpsls/internal/rules"
)

// QuitSignal ends a session when entered instead of a choice
const QuitSignal = "q"

// ComputerName is the winner name reported when the computer takes a round
const ComputerName = "PC"

// ErrInvalidChoice is reported for round input that is neither a choice nor the quit signal
var ErrInvalidChoice = errors.New("invalid choice")

// ReportKind classifies the result of one input line
type ReportKind int

const (
	InvalidInput ReportKind = iota
	Tied
	HumanWon
	ComputerWon
	Quit
)

// String returns the string representation of a report kind
func (k ReportKind) String() string {
	switch k {
	case InvalidInput:
		return "invalid"
	case Tied:
		return "tie"
	case HumanWon:
		return "human"
	case ComputerWon:
		return "computer"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Report describes what happened for one line of round input
type Report struct {
	Kind     ReportKind
	Input    string
	Player   string
	Human    rules.Choice
	Computer rules.Choice
	Score    Score
	// Winner is the player name, ComputerName, or empty for ties and non-rounds
	Winner string
}

// Decided reports whether a point was awarded
func (r Report) Decided() bool {
	return r.Kind == HumanWon || r.Kind == ComputerWon
}

// Err returns ErrInvalidChoice for invalid input and nil otherwise
func (r Report) Err() error {
	if r.Kind != InvalidInput {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidChoice, r.Input)
}

// PlayRound adjudicates one line of human input against the computer's
// choice and updates score. It is the only code that mutates a Score.
// Invalid input and the quit signal leave score untouched.
func PlayRound(input string, computer rules.Choice, player string, score *Score) Report {
	report := Report{
		Input:    input,
		Player:   player,
		Computer: computer,
		Score:    *score,
	}

	if input == QuitSignal {
		report.Kind = Quit
		return report
	}

	human, ok := rules.ParseChoice(input)
	if !ok {
		report.Kind = InvalidInput
		return report
	}
	report.Human = human

	switch rules.Resolve(human, computer) {
	case rules.Tie:
		report.Kind = Tied
	case rules.FirstWins:
		score.Human++
		report.Kind = HumanWon
		report.Winner = player
	case rules.SecondWins:
		score.Computer++
		report.Kind = ComputerWon
		report.Winner = ComputerName
	}

	report.Score = *score
	return report
}
