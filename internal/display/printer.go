// Package display renders everything the game shows on the terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/rpsls/internal/game"
	"github.com/lox/rpsls/internal/rules"
)

const (
	NamePrompt = "Write your name = "

	MenuPrompt = "Rock-Paper-Scissors Game\n" +
		"- Press 1 to start Game\n" +
		"- Press 2 to read instructions\n" +
		"- Press 3 to exit\n" +
		"-->"

	InvalidChoiceMessage = "Incorrect, please correct and write again."
	TieMessage           = "It is a tie!"
	FarewellMessage      = "Dr. Sheldon Cooper wishes you a good day."
	WrongCommandMessage  = "Wrong command, try again."
)

const (
	resultRule = 30
	menuRule   = 10
)

// Printer writes styled game output to a stream
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter creates a printer for w using the named theme
func NewPrinter(w io.Writer, theme string) (*Printer, error) {
	profile, force, err := profileFor(theme)
	if err != nil {
		return nil, err
	}

	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(profile)
	}

	return &Printer{w: w, styles: newStyles(r)}, nil
}

func (p *Printer) println(s string) error {
	_, err := fmt.Fprintln(p.w, s)
	return err
}

// Title prints the banner shown at startup
func (p *Printer) Title() error {
	return p.println(p.styles.Title.Render("Rock · Paper · Scissors · Lizard · Spock") + "\n")
}

// ShowReport prints the outcome of one line of round input
func (p *Printer) ShowReport(r game.Report) error {
	switch r.Kind {
	case game.InvalidInput:
		return p.println(p.styles.Error.Render(InvalidChoiceMessage))
	case game.Tied:
		return p.println(p.styles.Tie.Render(TieMessage))
	case game.Quit:
		return p.println(FarewellMessage)
	default:
		return p.println(p.Result(r))
	}
}

// Result formats the block printed after a decided round
func (p *Printer) Result(r game.Report) string {
	winner := p.styles.Win
	if r.Kind == game.ComputerWon {
		winner = p.styles.Loss
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("-", resultRule) + "\n")
	b.WriteString("     " + p.styles.Heading.Render("Results") + "    \n")
	fmt.Fprintf(&b, "You chose this: %s\n", r.Human)
	fmt.Fprintf(&b, "Computer chose this: %s\n", r.Computer)
	fmt.Fprintf(&b, "Score: %s %d --- COMPUTER %d\n", r.Player, r.Score.Human, r.Score.Computer)
	b.WriteString(" " + winner.Render(r.Winner+" WON !!") + "\n")
	b.WriteString(strings.Repeat("-", resultRule))
	return b.String()
}

// WrongCommand prints the message for an unusable menu entry
func (p *Printer) WrongCommand() error {
	return p.println(p.styles.Error.Render(WrongCommandMessage) + "\n" + strings.Repeat("-", menuRule))
}

// Instructions prints the rules of the game
func (p *Printer) Instructions() error {
	return p.println(Instructions())
}

// Instructions returns the static help text, with the verb table taken
// from the rules package.
func Instructions() string {
	var b strings.Builder
	b.WriteString("What is this game? \n")
	b.WriteString(" 'The game was originally created by Sam Kass with Karen Bryla.'\n")
	b.WriteString(" The game is an expansion on the game Rock, Paper, Scissors. ")
	b.WriteString("Each player picks a variable and reveals it at the same time. ")
	b.WriteString("The winner is the one who defeats the others. ")
	b.WriteString("In a tie, the process is repeated until a winner is found.\n")

	all := rules.Rules()
	for i, r := range all {
		if i == len(all)-1 {
			b.WriteString("(and as it always has) ")
		}
		b.WriteString(r.String())
		if i < len(all)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
