// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// TextModel reads one line of text. Enter submits the trimmed value
// when it validates; otherwise the validation error is shown until the
// next key press.
type TextModel struct {
	label    string
	input    textinput.Model
	validate func(string) error
	keys     keyMap

	err      error
	done     bool
	canceled bool
}

// NewTextModel returns a focused text prompt for question.
func NewTextModel(question Question) TextModel {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = question.Placeholder
	input.Focus()
	return TextModel{
		label:    question.Label,
		input:    input,
		validate: question.Validate,
		keys:     defaultKeys,
	}
}

func (m TextModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m TextModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	if keyMessage, ok := message.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMessage, m.keys.Cancel):
			m.canceled = true
			return m, tea.Quit
		case key.Matches(keyMessage, m.keys.Confirm):
			if m.validate != nil {
				if err := m.validate(m.Value()); err != nil {
					m.err = err
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
		m.err = nil
	}

	var command tea.Cmd
	m.input, command = m.input.Update(message)
	return m, command
}

func (m TextModel) View() string {
	switch {
	case m.canceled:
		return ""
	case m.done:
		return labelStyle.Render(m.label) + " " + m.Value() + "\n"
	}
	var builder strings.Builder
	builder.WriteString(labelStyle.Render(m.label) + "\n")
	builder.WriteString(m.input.View() + "\n")
	if m.err != nil {
		builder.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	}
	return builder.String()
}

// Value returns the current answer with surrounding spaces removed.
func (m TextModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Err returns the validation error shown to the user, if any.
func (m TextModel) Err() error {
	return m.err
}

// Done reports whether an answer was submitted.
func (m TextModel) Done() bool {
	return m.done
}

// Canceled reports whether the user aborted the prompt.
func (m TextModel) Canceled() bool {
	return m.canceled
}
