package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// State is the lifecycle state of a session
type State int

const (
	AwaitingChoice State = iota
	Ended
)

// String returns the string representation of a session state
func (s State) String() string {
	switch s {
	case AwaitingChoice:
		return "awaiting-choice"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// ChoicePrompt is printed before every round input
const ChoicePrompt = "Choose from (Rock Paper Scissors Lizard Spock) \n"

// Prompter reads one line of human input after printing a prompt
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// Reporter presents round reports to the human
type Reporter interface {
	ShowReport(r Report) error
}

// Session is one named player's run of rounds against the computer
type Session struct {
	ID     string
	Player string

	score   Score
	rounds  int
	state   State
	picker  Picker
	clock   quartz.Clock
	started time.Time
	logger  *log.Logger
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithClock sets the clock used to time the session
func WithClock(clock quartz.Clock) SessionOption {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithLogger sets the session logger
func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession starts a session with a zero score
func NewSession(player string, picker Picker, opts ...SessionOption) *Session {
	s := &Session{
		ID:     uuid.New().String(),
		Player: player,
		picker: picker,
		clock:  quartz.NewReal(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithPrefix("session").With("session", s.ID, "player", player)
	s.started = s.clock.Now()
	s.logger.Info("Session started")
	return s
}

// Score returns the current score
func (s *Session) Score() Score {
	return s.score
}

// State returns the current lifecycle state
func (s *Session) State() State {
	return s.state
}

// Rounds returns how many valid rounds (ties included) were played
func (s *Session) Rounds() int {
	return s.rounds
}

// Play handles one line of input. The quit signal ends the session without
// drawing a computer choice; any other line draws exactly one choice and is
// adjudicated once. Input after the session ended is ignored.
func (s *Session) Play(input string) Report {
	if s.state == Ended {
		return Report{Kind: Quit, Input: input, Player: s.Player, Score: s.score}
	}

	if input == QuitSignal {
		s.state = Ended
		s.logger.Info("Session ended",
			"score", s.score.String(),
			"rounds", s.rounds,
			"duration", s.clock.Since(s.started))
		return Report{Kind: Quit, Input: input, Player: s.Player, Score: s.score}
	}

	report := PlayRound(input, s.picker.Pick(), s.Player, &s.score)
	if report.Kind == InvalidInput {
		s.logger.Debug("Rejected round input", "error", report.Err())
		return report
	}

	s.rounds++
	s.logger.Debug("Round played",
		"round", s.rounds,
		"human", report.Human,
		"computer", report.Computer,
		"result", report.Kind,
		"score", report.Score.String())
	return report
}

// Run prompts for choices until the session ends, handing every report to out
func (s *Session) Run(in Prompter, out Reporter) error {
	for s.state != Ended {
		line, err := in.Prompt(ChoicePrompt)
		if err != nil {
			return fmt.Errorf("read choice: %w", err)
		}
		if err := out.ShowReport(s.Play(line)); err != nil {
			return fmt.Errorf("show report: %w", err)
		}
	}
	return nil
}
