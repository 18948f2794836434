package shell

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/rpsls/internal/console"
	"github.com/lox/rpsls/internal/display"
	"github.com/lox/rpsls/internal/game"
	"github.com/lox/rpsls/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

// newTestShell wires a shell to a real console and plain printer over script
func newTestShell(t *testing.T, script string, picker game.Picker, opts ...Option) (*Shell, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	printer, err := display.NewPrinter(&out, display.ThemePlain)
	require.NoError(t, err)

	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	return New(console.New(strings.NewReader(script), &out), printer, picker, opts...), &out
}

type scriptedInput struct {
	lines   []string
	prompts []string
	err     error
}

func (s *scriptedInput) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.lines) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", console.ErrClosed
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptedInput) count(prompt string) int {
	n := 0
	for _, p := range s.prompts {
		if p == prompt {
			n++
		}
	}
	return n
}

type countingAnimator struct {
	runs int
}

func (a *countingAnimator) Run() error {
	a.runs++
	return nil
}

func TestShellScriptedSession(t *testing.T) {
	sh, out := newTestShell(t, "1\nSheldon\nRock\nScissors\nq\n3\n",
		game.NewSequencePicker(rules.Scissors, rules.Rock))

	require.NoError(t, sh.Run())

	assert.Equal(t, Exited, sh.State())
	assert.Equal(t, 1, sh.Sessions())
	require.NotNil(t, sh.Session())
	assert.Equal(t, game.Score{Human: 1, Computer: 1}, sh.Session().Score())
	assert.Equal(t, game.Ended, sh.Session().State())

	text := out.String()
	first := strings.Index(text, "Score: Sheldon 1 --- COMPUTER 0")
	second := strings.Index(text, "Score: Sheldon 1 --- COMPUTER 1")
	farewell := strings.Index(text, display.FarewellMessage)
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, farewell)
	assert.Less(t, first, second)
	assert.Less(t, second, farewell)
	assert.Contains(t, text, " Sheldon WON !!")
	assert.Contains(t, text, " PC WON !!")
	assert.Contains(t, text, display.NamePrompt)
	assert.Equal(t, 2, strings.Count(text, display.MenuPrompt))
}

func TestShellInvalidChoiceInSession(t *testing.T) {
	sh, out := newTestShell(t, "1\nAmy\nBanana\nrock\nq\n3\n", game.NewSequencePicker(rules.Rock))

	require.NoError(t, sh.Run())

	assert.Equal(t, game.Score{}, sh.Session().Score())
	assert.Equal(t, 2, strings.Count(out.String(), display.InvalidChoiceMessage))
}

func TestShellOversizedChoiceLine(t *testing.T) {
	script := "1\nAmy\n" + strings.Repeat("x", 70_000) + "\nRock\nq\n3\n"
	sh, out := newTestShell(t, script, game.NewSequencePicker(rules.Rock, rules.Scissors))

	require.NoError(t, sh.Run())

	assert.Equal(t, Exited, sh.State())
	assert.Equal(t, 1, strings.Count(out.String(), display.InvalidChoiceMessage))
	assert.Equal(t, game.Score{Human: 1}, sh.Session().Score())
}

func TestShellOversizedMenuLine(t *testing.T) {
	sh, out := newTestShell(t, strings.Repeat("1", 70_000)+"\n3\n", game.NewSequencePicker())

	require.NoError(t, sh.Run())

	assert.Equal(t, Exited, sh.State())
	assert.Equal(t, 1, strings.Count(out.String(), display.WrongCommandMessage))
}

func TestShellTieRound(t *testing.T) {
	sh, out := newTestShell(t, "1\nAmy\nPaper\nq\n3\n", game.NewSequencePicker(rules.Paper))

	require.NoError(t, sh.Run())

	assert.Contains(t, out.String(), display.TieMessage)
	assert.NotContains(t, out.String(), "WON !!")
	assert.Equal(t, game.Score{}, sh.Session().Score())
}

func TestShellInstructionsKeepMenu(t *testing.T) {
	sh, out := newTestShell(t, "", game.NewSequencePicker())

	require.NoError(t, sh.Dispatch(ParseMenu("2")))

	assert.Equal(t, MenuWait, sh.State())
	assert.Nil(t, sh.Session())
	assert.Contains(t, out.String(), "Scissors cuts Paper")
}

func TestShellInstructionsDoNotTouchScore(t *testing.T) {
	sh, _ := newTestShell(t, "1\nAmy\nRock\nq\n2\n3\n", game.NewSequencePicker(rules.Scissors))

	require.NoError(t, sh.Run())

	assert.Equal(t, game.Score{Human: 1}, sh.Session().Score())
	assert.Equal(t, 1, sh.Sessions())
}

func TestShellExitStopsPrompting(t *testing.T) {
	in := &scriptedInput{lines: []string{"3", "1", "Amy"}}
	sh := New(in, &fakeView{}, game.NewSequencePicker(), WithLogger(quietLogger()))

	require.NoError(t, sh.Run())

	assert.Equal(t, Exited, sh.State())
	assert.Equal(t, 1, in.count(display.MenuPrompt))
	assert.Equal(t, []string{"1", "Amy"}, in.lines)
	assert.Zero(t, sh.Sessions())
}

func TestShellWrongCommands(t *testing.T) {
	sh, out := newTestShell(t, "abc\n7\n\n3\n", game.NewSequencePicker())

	require.NoError(t, sh.Run())

	assert.Equal(t, 3, strings.Count(out.String(), display.WrongCommandMessage))
	assert.Equal(t, Exited, sh.State())
}

func TestShellEndOfInput(t *testing.T) {
	t.Run("at menu", func(t *testing.T) {
		sh, _ := newTestShell(t, "2\n", game.NewSequencePicker())
		require.NoError(t, sh.Run())
		assert.Equal(t, Exited, sh.State())
	})

	t.Run("during session", func(t *testing.T) {
		sh, _ := newTestShell(t, "1\nAmy\nRock\n", game.NewSequencePicker(rules.Scissors))
		require.NoError(t, sh.Run())
		assert.Equal(t, Exited, sh.State())
		assert.Equal(t, game.Score{Human: 1}, sh.Session().Score())
	})

	t.Run("at name prompt", func(t *testing.T) {
		sh, _ := newTestShell(t, "1\n", game.NewSequencePicker())
		require.NoError(t, sh.Run())
		assert.Equal(t, Exited, sh.State())
		assert.Zero(t, sh.Sessions())
	})
}

func TestShellConsoleFailure(t *testing.T) {
	boom := errors.New("tty gone")
	in := &scriptedInput{lines: []string{"1"}, err: boom}
	sh := New(in, &fakeView{}, game.NewSequencePicker(), WithLogger(quietLogger()))

	err := sh.Run()
	assert.ErrorIs(t, err, boom)
}

func TestShellBlankName(t *testing.T) {
	t.Run("prompts again", func(t *testing.T) {
		in := &scriptedInput{lines: []string{"1", "", "  ", "Penny", "q", "3"}}
		sh := New(in, &fakeView{}, game.NewSequencePicker(), WithLogger(quietLogger()))

		require.NoError(t, sh.Run())

		assert.Equal(t, 3, in.count(display.NamePrompt))
		assert.Equal(t, "Penny", sh.Session().Player)
	})

	t.Run("uses default name", func(t *testing.T) {
		in := &scriptedInput{lines: []string{"1", "", "q", "3"}}
		sh := New(in, &fakeView{}, game.NewSequencePicker(),
			WithLogger(quietLogger()), WithDefaultName("Leonard"))

		require.NoError(t, sh.Run())

		assert.Equal(t, 1, in.count(display.NamePrompt))
		assert.Equal(t, "Leonard", sh.Session().Player)
	})
}

func TestShellNewSessionResetsScore(t *testing.T) {
	sh, _ := newTestShell(t, "1\nAmy\nRock\nRock\nq\n1\nBob\nq\n3\n",
		game.NewSequencePicker(rules.Scissors))

	require.NoError(t, sh.Run())

	assert.Equal(t, 2, sh.Sessions())
	assert.Equal(t, "Bob", sh.Session().Player)
	assert.Equal(t, game.Score{}, sh.Session().Score())
}

func TestShellRunsAnimatorPerMenuLine(t *testing.T) {
	anim := &countingAnimator{}
	in := &scriptedInput{lines: []string{"2", "x", "1", "Amy", "q", "3"}}
	sh := New(in, &fakeView{}, game.NewSequencePicker(),
		WithLogger(quietLogger()), WithAnimator(anim))

	require.NoError(t, sh.Run())

	assert.Equal(t, 4, anim.runs)
}

func TestShellStateDuringSession(t *testing.T) {
	view := &fakeView{}
	in := &scriptedInput{lines: []string{"1", "Amy", "Rock", "q", "3"}}
	sh := New(in, view, game.NewSequencePicker(rules.Rock), WithLogger(quietLogger()))
	view.shell = sh

	require.NoError(t, sh.Run())

	require.Len(t, view.states, 2)
	assert.Equal(t, []State{InSession, InSession}, view.states)
	assert.Equal(t, Exited, sh.State())
}

// fakeView records what the shell asked it to show
type fakeView struct {
	shell        *Shell
	reports      []game.Report
	states       []State
	instructions int
	wrong        int
}

func (v *fakeView) ShowReport(r game.Report) error {
	v.reports = append(v.reports, r)
	if v.shell != nil {
		v.states = append(v.states, v.shell.State())
	}
	return nil
}

func (v *fakeView) Instructions() error {
	v.instructions++
	return nil
}

func (v *fakeView) WrongCommand() error {
	v.wrong++
	return nil
}
