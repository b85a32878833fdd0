// Package menu implements the numbered selection prompt loop.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/idilsaglam/tudu/internal/ui"
)

// ErrCancelled reports the reserved "0" input: the user asked to
// abandon the run from a prompt. Callers decide how to unwind; the
// menu never terminates the process itself.
var ErrCancelled = errors.New("cancelled")

const (
	defaultPrompt = "Select Option:"
	banner        = "===================================="
	invalidMsg    = "Invalid option selected, try again."
)

// Menu reads line input and renders numbered option lists.
type Menu struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Menu {
	return &Menu{in: bufio.NewScanner(in), out: out}
}

// Prompt prints msg and the standing exit hint, then reads one line
// and trims it. The reserved input "0" yields ErrCancelled instead of
// a value; so does a closed input stream.
func (m *Menu) Prompt(msg string) (string, error) {
	fmt.Fprintln(m.out, msg)
	fmt.Fprintln(m.out, ui.C(ui.Current().Muted, "Press 0 to exit"))
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrCancelled
	}
	line := strings.TrimSpace(m.in.Text())
	if line == "0" {
		return "", ErrCancelled
	}
	return line, nil
}

// Select renders a banner, the prompt and a 1-based numbered option
// list, then re-prompts until the input parses as a number inside the
// list. The returned index is zero-based.
func (m *Menu) Select(options []string, prompt string) (int, error) {
	if prompt == "" {
		prompt = defaultPrompt
	}
	for {
		var b strings.Builder
		b.WriteString("\n" + banner + "\n")
		b.WriteString(prompt)
		b.WriteString("\n" + banner)
		for i, opt := range options {
			fmt.Fprintf(&b, "\n%d: %s", i+1, opt)
		}
		line, err := m.Prompt(b.String())
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintln(m.out, invalidMsg)
			continue
		}
		return n - 1, nil
	}
}
