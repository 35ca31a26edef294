// Copyright 2026 The Apify CLI Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings shared by the prompt models. Up and Down
// only apply to selection lists, where letters are not typed.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

var defaultKeys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up", "shift+tab"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down", "tab"),
		key.WithHelp("j/↓", "down"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}
