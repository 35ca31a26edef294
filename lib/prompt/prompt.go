// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrCanceled is returned when the user aborts a prompt with Esc or
// Ctrl+C.
var ErrCanceled = errors.New("prompt canceled")

// Prompter asks the user questions.
type Prompter interface {
	// Text asks for one line of text.
	Text(ctx context.Context, question Question) (string, error)

	// Choose asks the user to pick one of choices.
	Choose(ctx context.Context, label string, choices []string) (string, error)
}

// Question configures a text prompt.
type Question struct {
	Label       string
	Placeholder string

	// Validate rejects an answer. The error is shown under the input
	// and the prompt stays open.
	Validate func(string) error
}

// Terminal runs prompts as bubbletea programs on Input and Output.
type Terminal struct {
	Input  io.Reader
	Output io.Writer
}

// Text implements [Prompter].
func (t Terminal) Text(ctx context.Context, question Question) (string, error) {
	final, err := t.run(ctx, NewTextModel(question))
	if err != nil {
		return "", err
	}
	model := final.(TextModel)
	if model.Canceled() {
		return "", ErrCanceled
	}
	return model.Value(), nil
}

// Choose implements [Prompter].
func (t Terminal) Choose(ctx context.Context, label string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", errors.New("nothing to choose from")
	}
	final, err := t.run(ctx, NewSelectModel(label, choices))
	if err != nil {
		return "", err
	}
	model := final.(SelectModel)
	if model.Canceled() {
		return "", ErrCanceled
	}
	return model.Selected(), nil
}

func (t Terminal) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(t.Input),
		tea.WithOutput(t.Output),
	)
	return program.Run()
}

// IsTerminal reports whether file is attached to a terminal.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
