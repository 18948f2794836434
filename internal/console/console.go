// Package console provides the line-oriented prompt used by the game.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrClosed is returned once the input stream is exhausted
var ErrClosed = errors.New("console input closed")

// Console reads whole lines from an input stream and writes prompts to an
// output stream. Lines may be of any length.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

// New creates a console over the given streams
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Writer returns the output stream
func (c *Console) Writer() io.Writer {
	return c.out
}

// Prompt prints prompt and returns the next input line without its line
// terminator. Surrounding spaces are preserved since choices are matched
// exactly. A final line without a terminator is still returned.
func (c *Console) Prompt(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(c.out, prompt); err != nil {
			return "", fmt.Errorf("write prompt: %w", err)
		}
	}

	line, err := c.reader.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", ErrClosed
		}
	default:
		return "", fmt.Errorf("read line: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
