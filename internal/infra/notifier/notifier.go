// Package notifier provides desktop notification delivery.
package notifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"text/template"

	"github.com/runoshun/pomodoro/internal/domain"
)

// ErrEmptyCommand is returned when the command template has no program.
var ErrEmptyCommand = errors.New("notify command is empty")

// Ensure Command implements domain.Notifier interface.
var _ domain.Notifier = (*Command)(nil)

// Command runs an external program such as notify-send or terminal-notifier.
// Every whitespace-separated word of the template is expanded on its own,
// so a title or message containing spaces stays a single argument.
type Command struct {
	words []*template.Template
}

// templateData is the data passed to each argument template.
type templateData struct {
	Title   string
	Message string
}

// NewCommand parses a command template like
// `notify-send {{.Title}} {{.Message}}`.
func NewCommand(commandTemplate string) (*Command, error) {
	fields := strings.Fields(commandTemplate)
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}

	words := make([]*template.Template, 0, len(fields))
	for i, field := range fields {
		tmpl, err := template.New(fmt.Sprintf("arg%d", i)).Option("missingkey=error").Parse(field)
		if err != nil {
			return nil, fmt.Errorf("parse notify command: %w", err)
		}
		words = append(words, tmpl)
	}
	return &Command{words: words}, nil
}

// Build expands the template into a program and its arguments.
func (c *Command) Build(title, message string) (*domain.ExecCommand, error) {
	data := templateData{Title: title, Message: message}
	args := make([]string, 0, len(c.words))
	for _, w := range c.words {
		var buf bytes.Buffer
		if err := w.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("expand notify command: %w", err)
		}
		args = append(args, buf.String())
	}
	return &domain.ExecCommand{Program: args[0], Args: args[1:]}, nil
}

// Notify runs the command and waits for it to exit.
func (c *Command) Notify(ctx context.Context, title, message string) error {
	cmd, err := c.Build(title, message)
	if err != nil {
		return err
	}

	// #nosec G204 - the program comes from the user's own config file
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if out, err := execCmd.CombinedOutput(); err != nil {
		return fmt.Errorf("run %s: %w: %s", cmd.Program, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Nop discards notifications. Used when notifications are disabled.
type Nop struct{}

// Ensure Nop implements domain.Notifier interface.
var _ domain.Notifier = Nop{}

// Notify does nothing.
func (Nop) Notify(context.Context, string, string) error {
	return nil
}
