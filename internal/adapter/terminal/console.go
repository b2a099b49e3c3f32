// Package terminal adapts line-oriented readers and writers to the
// usecase.Console port.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console reads answers one line at a time and writes plain text lines.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a new Console.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Prompt writes label without a trailing newline and returns the next input
// line with its line terminator removed. Other whitespace is preserved.
// io.EOF is returned only when no further input is available.
func (c *Console) Prompt(label string) (string, error) {
	if _, err := io.WriteString(c.out, label); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := c.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			// Keep the terminal tidy when stdin closes mid-prompt.
			_, _ = io.WriteString(c.out, "\n")
			return "", io.EOF
		}
	} else if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Print writes line followed by a newline.
func (c *Console) Print(line string) {
	_, _ = fmt.Fprintln(c.out, line)
}
