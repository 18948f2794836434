package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidMenuInput is reported when menu input is not a number
	ErrInvalidMenuInput = errors.New("menu input is not a number")
	// ErrUnknownMenuNumber is reported for numbers other than 1, 2 and 3
	ErrUnknownMenuNumber = errors.New("unknown menu number")
)

// Command is a menu selection
type Command int

const (
	NoCommand Command = iota
	StartGame
	ShowInstructions
	Exit
)

// String returns the string representation of a command
func (c Command) String() string {
	switch c {
	case StartGame:
		return "start"
	case ShowInstructions:
		return "instructions"
	case Exit:
		return "exit"
	default:
		return "none"
	}
}

// MenuResult is the outcome of parsing one menu line. Exactly one of
// Command and Err is set.
type MenuResult struct {
	Command Command
	Err     error
}

// OK reports whether the line named a menu command
func (r MenuResult) OK() bool {
	return r.Err == nil
}

// ParseMenu parses a menu line. Surrounding whitespace is ignored; any
// failure is returned in the result rather than aborting.
func ParseMenu(input string) MenuResult {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return MenuResult{Err: fmt.Errorf("%w: %q", ErrInvalidMenuInput, input)}
	}

	switch n {
	case 1:
		return MenuResult{Command: StartGame}
	case 2:
		return MenuResult{Command: ShowInstructions}
	case 3:
		return MenuResult{Command: Exit}
	default:
		return MenuResult{Err: fmt.Errorf("%w: %d", ErrUnknownMenuNumber, n)}
	}
}
