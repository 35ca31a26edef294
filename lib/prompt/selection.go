// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

// SelectModel picks one entry from a fixed list. The cursor stops at
// both ends of the list.
type SelectModel struct {
	label   string
	choices []string
	cursor  int
	keys    keyMap

	done     bool
	canceled bool
}

// NewSelectModel returns a selection list with the cursor on the
// first choice.
func NewSelectModel(label string, choices []string) SelectModel {
	return SelectModel{
		label:   label,
		choices: slices.Clone(choices),
		keys:    defaultKeys,
	}
}

func (m SelectModel) Init() tea.Cmd {
	return nil
}

func (m SelectModel) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	keyMessage, ok := message.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMessage, m.keys.Cancel):
		m.canceled = true
		return m, tea.Quit
	case key.Matches(keyMessage, m.keys.Confirm):
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMessage, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMessage, m.keys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	}
	return m, nil
}

func (m SelectModel) View() string {
	switch {
	case m.canceled:
		return ""
	case m.done:
		return labelStyle.Render(m.label) + " " + m.Selected() + "\n"
	}
	var builder strings.Builder
	builder.WriteString(labelStyle.Render(m.label) + "\n")
	for index, choice := range m.choices {
		if index == m.cursor {
			builder.WriteString(cursorStyle.Render("> "+choice) + "\n")
		} else {
			builder.WriteString("  " + choice + "\n")
		}
	}
	return builder.String()
}

// Selected returns the choice under the cursor.
func (m SelectModel) Selected() string {
	if len(m.choices) == 0 {
		return ""
	}
	return m.choices[m.cursor]
}

// Canceled reports whether the user aborted the selection.
func (m SelectModel) Canceled() bool {
	return m.canceled
}
