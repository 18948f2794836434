package game

import (
	rand "math/rand/v2"

	"github.com/lox/rpsls/internal/randutil"
	"github.com/lox/rpsls/internal/rules"
)

// Picker supplies the computer's choice for each round
type Picker interface {
	Pick() rules.Choice
}

// RandomPicker draws uniformly from the five choices
type RandomPicker struct {
	rng     *rand.Rand
	choices []rules.Choice
}

// NewRandomPicker returns a picker whose sequence is fully determined by seed
func NewRandomPicker(seed int64) *RandomPicker {
	return &RandomPicker{
		rng:     randutil.New(seed),
		choices: rules.Choices(),
	}
}

// Pick returns the next random choice
func (p *RandomPicker) Pick() rules.Choice {
	return p.choices[p.rng.IntN(len(p.choices))]
}

// SequencePicker replays a fixed list of choices, wrapping around at the end
type SequencePicker struct {
	choices []rules.Choice
	next    int
}

// NewSequencePicker creates a picker that returns choices in order
func NewSequencePicker(choices ...rules.Choice) *SequencePicker {
	if len(choices) == 0 {
		choices = []rules.Choice{rules.Rock}
	}
	return &SequencePicker{choices: choices}
}

// Pick returns the next scripted choice
func (p *SequencePicker) Pick() rules.Choice {
	c := p.choices[p.next%len(p.choices)]
	p.next++
	return c
}
