package rules

// Outcome is the result of comparing two choices
type Outcome int

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case FirstWins:
		return "first-wins"
	case SecondWins:
		return "second-wins"
	default:
		return "unknown"
	}
}

// Inverse returns the outcome seen from the other side
func (o Outcome) Inverse() Outcome {
	switch o {
	case FirstWins:
		return SecondWins
	case SecondWins:
		return FirstWins
	default:
		return o
	}
}
