package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Outcome is the result of the overwrite check.
type Outcome int

const (
	// Proceed means rendering may write the output file.
	Proceed Outcome = iota
	// Cancelled means the user declined to overwrite; nothing is rendered.
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Proceed:
		return "proceed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(question string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(question string) (bool, error) {
	return f(question)
}

// LinePrompter writes a question and reads one line of answer. Only "y"
// (any case, surrounding space ignored) confirms; end of input declines.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements Confirmer.
func (p *LinePrompter) Confirm(question string) (bool, error) {
	fmt.Fprint(p.Out, question)

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	if errors.Is(err, io.EOF) {
		// Keep the next output off the prompt line.
		fmt.Fprintln(p.Out)
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// newPrompter reads answers from the command's input. When that input is a
// file but not a terminal, the prompt goes to stderr so stdout carries only
// results.
func newPrompter(cmd *cobra.Command) *LinePrompter {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	if f, ok := in.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		out = cmd.ErrOrStderr()
	}
	return &LinePrompter{In: in, Out: out}
}

// OverwriteQuestion is the prompt shown for an existing output file.
func OverwriteQuestion(path string) string {
	return fmt.Sprintf("File \"%s\" exists. Overwrite? (y/n): ", path)
}

// ConfirmOverwrite decides whether path may be written. A missing file
// proceeds without asking; an existing one proceeds only if c confirms.
func ConfirmOverwrite(path string, c Confirmer) (Outcome, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Proceed, nil
		}
		return Cancelled, fmt.Errorf("checking %s: %w", path, err)
	}

	ok, err := c.Confirm(OverwriteQuestion(path))
	if err != nil {
		return Cancelled, err
	}
	if !ok {
		return Cancelled, nil
	}
	return Proceed, nil
}
