package rules

// Choice represents one of the five hand shapes
type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
	Lizard
	Spock
)

const numChoices = 5

var choiceNames = [numChoices]string{
	Rock:     "Rock",
	Paper:    "Paper",
	Scissors: "Scissors",
	Lizard:   "Lizard",
	Spock:    "Spock",
}

// Choices returns all valid choices in canonical order
func Choices() []Choice {
	return []Choice{Rock, Paper, Scissors, Lizard, Spock}
}

// String returns the canonical label of a choice
func (c Choice) String() string {
	if !c.Valid() {
		return "?"
	}
	return choiceNames[c]
}

// Valid reports whether c is one of the five choices
func (c Choice) Valid() bool {
	return c >= Rock && c <= Spock
}

// ParseChoice converts a canonical label to a Choice. Matching is
// case-sensitive and does not trim whitespace.
func ParseChoice(s string) (Choice, bool) {
	for i, name := range choiceNames {
		if name == s {
			return Choice(i), true
		}
	}
	return 0, false
}
