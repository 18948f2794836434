package game

import "fmt"

// Score holds the cumulative points of one session. Counters only ever
// grow, and only PlayRound increments them.
type Score struct {
	Human    int
	Computer int
}

// Total returns the number of decided rounds
func (s Score) Total() int {
	return s.Human + s.Computer
}

// String returns the score as "human-computer"
func (s Score) String() string {
	return fmt.Sprintf("%d-%d", s.Human, s.Computer)
}
