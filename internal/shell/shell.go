// Package shell runs the top-level menu loop.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/rpsls/internal/console"
	"github.com/lox/rpsls/internal/display"
	"github.com/lox/rpsls/internal/game"
)

// State is the menu loop state
type State int

const (
	MenuWait State = iota
	InSession
	Exited
)

// String returns the string representation of a shell state
func (s State) String() string {
	switch s {
	case MenuWait:
		return "menu"
	case InSession:
		return "in-session"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

// View is the output side of the shell
type View interface {
	game.Reporter
	Instructions() error
	WrongCommand() error
}

// Animator plays a purely decorative animation
type Animator interface {
	Run() error
}

// Shell owns the menu state and at most one live session
type Shell struct {
	in     game.Prompter
	view   View
	picker game.Picker

	animator    Animator
	defaultName string
	clock       quartz.Clock
	logger      *log.Logger

	state    State
	session  *game.Session
	sessions int
}

// Option configures a Shell
type Option func(*Shell)

// WithAnimator plays an animation between reading a menu line and acting on it
func WithAnimator(a Animator) Option {
	return func(s *Shell) {
		s.animator = a
	}
}

// WithDefaultName sets the player name used when the name prompt is left blank
func WithDefaultName(name string) Option {
	return func(s *Shell) {
		s.defaultName = strings.TrimSpace(name)
	}
}

// WithClock sets the clock handed to sessions
func WithClock(clock quartz.Clock) Option {
	return func(s *Shell) {
		s.clock = clock
	}
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

// New creates a shell in the MenuWait state
func New(in game.Prompter, view View, picker game.Picker, opts ...Option) *Shell {
	s := &Shell{
		in:     in,
		view:   view,
		picker: picker,
		clock:  quartz.NewReal(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithPrefix("shell")
	return s
}

// State returns the current state
func (s *Shell) State() State {
	return s.state
}

// Sessions returns how many sessions have been started
func (s *Shell) Sessions() int {
	return s.sessions
}

// Session returns the most recent session, or nil before the first one
func (s *Shell) Session() *game.Session {
	return s.session
}

// Run loops over the menu until the human exits or input is exhausted.
// Only console failures other than end of input are returned.
func (s *Shell) Run() error {
	for s.state != Exited {
		if err := s.step(); err != nil {
			if isClosed(err) {
				s.logger.Info("Input closed, exiting", "state", s.state)
				s.state = Exited
				return nil
			}
			s.logger.Error("Console failure", "error", err)
			return err
		}
	}
	return nil
}

func (s *Shell) step() error {
	line, err := s.in.Prompt(display.MenuPrompt)
	if err != nil {
		return fmt.Errorf("read menu: %w", err)
	}

	if s.animator != nil {
		if err := s.animator.Run(); err != nil {
			return fmt.Errorf("progress: %w", err)
		}
	}

	return s.Dispatch(ParseMenu(line))
}

// Dispatch applies one parsed menu selection
func (s *Shell) Dispatch(result MenuResult) error {
	if !result.OK() {
		s.logger.Debug("Rejected menu input", "error", result.Err)
		return s.view.WrongCommand()
	}

	s.logger.Debug("Menu command", "command", result.Command)
	switch result.Command {
	case StartGame:
		return s.play()
	case ShowInstructions:
		return s.view.Instructions()
	case Exit:
		s.state = Exited
		return nil
	default:
		return s.view.WrongCommand()
	}
}

func (s *Shell) play() error {
	s.state = InSession
	defer func() {
		if s.state == InSession {
			s.state = MenuWait
		}
	}()

	name, err := s.readName()
	if err != nil {
		return err
	}

	s.sessions++
	s.session = game.NewSession(name, s.picker,
		game.WithClock(s.clock),
		game.WithLogger(s.logger))

	return s.session.Run(s.in, s.view)
}

func (s *Shell) readName() (string, error) {
	for {
		name, err := s.in.Prompt(display.NamePrompt)
		if err != nil {
			return "", fmt.Errorf("read name: %w", err)
		}
		if strings.TrimSpace(name) != "" {
			return name, nil
		}
		if s.defaultName != "" {
			return s.defaultName, nil
		}
	}
}

func isClosed(err error) bool {
	return errors.Is(err, console.ErrClosed) || errors.Is(err, io.EOF)
}
