// Package terminal provides interactive terminal adapters.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/runoshun/pomodoro/internal/domain"
)

// Ensure LinePrompter implements domain.Prompter interface.
var _ domain.Prompter = (*LinePrompter)(nil)

// LinePrompter waits for the user to press enter.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter reading from in and printing to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Confirm prints message and blocks until a line is read or ctx is done.
// End of input counts as confirmation.
func (p *LinePrompter) Confirm(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(p.out, "%s ", message)

	done := make(chan error, 1)
	go func() {
		_, err := p.in.ReadString('\n')
		done <- err
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read confirmation: %w", err)
		}
		return nil
	}
}
