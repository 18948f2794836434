package rules

// Rule records that Winner defeats Loser, described by Verb
// ("Scissors cuts Paper").
type Rule struct {
	Winner Choice
	Verb   string
	Loser  Choice
}

// String returns the rule as a sentence
func (r Rule) String() string {
	return r.Winner.String() + " " + r.Verb + " " + r.Loser.String()
}

// table lists every winning relation in the order the game is usually
// recited. Each choice appears exactly twice as Winner and twice as Loser.
var table = []Rule{
	{Scissors, "cuts", Paper},
	{Paper, "covers", Rock},
	{Rock, "crushes", Lizard},
	{Lizard, "poisons", Spock},
	{Spock, "smashes", Scissors},
	{Scissors, "decapitates", Lizard},
	{Lizard, "eats", Paper},
	{Paper, "disproves", Spock},
	{Spock, "vaporizes", Rock},
	{Rock, "crushes", Scissors},
}

// verbs[w][l] is the verb for w beating l, empty when w does not beat l.
var verbs [numChoices][numChoices]string

func init() {
	for _, r := range table {
		verbs[r.Winner][r.Loser] = r.Verb
	}
}

// Rules returns a copy of the winning relations in recital order
func Rules() []Rule {
	out := make([]Rule, len(table))
	copy(out, table)
	return out
}

// Beats reports whether a defeats b
func Beats(a, b Choice) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	return verbs[a][b] != ""
}

// Verb returns the verb describing a defeating b
func Verb(a, b Choice) (string, bool) {
	if !Beats(a, b) {
		return "", false
	}
	return verbs[a][b], true
}

// Defeats returns the two choices c beats, in canonical choice order
func Defeats(c Choice) [2]Choice {
	var out [2]Choice
	n := 0
	for _, other := range Choices() {
		if Beats(c, other) {
			out[n] = other
			n++
		}
	}
	return out
}

// Resolve compares the first choice against the second
func Resolve(first, second Choice) Outcome {
	switch {
	case first == second:
		return Tie
	case Beats(first, second):
		return FirstWins
	default:
		return SecondWins
	}
}
