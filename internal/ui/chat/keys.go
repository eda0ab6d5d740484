// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the helpdesk TUI.
//
// This file defines keyboard bindings and shortcuts for the chat interface,
// along with help text generation for the status bar.
package chat

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the chat interface.
// Each binding includes help text for the status bar.
type KeyMap struct {
	Submit     key.Binding
	Quit       key.Binding
	Cancel     key.Binding
	NewSession key.Binding
	Theme      key.Binding
	QuickRate  key.Binding
	Feedback   key.Binding
	Escalate   key.Binding
	FocusPrev  key.Binding
	FocusNext  key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
}

// DefaultKeyMap returns the default key bindings for the chat interface.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "send"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "close dialog"),
		),
		NewSession: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "new session"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "toggle theme"),
		),
		QuickRate: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "quick rate"),
		),
		Feedback: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("C-f", "rate answer"),
		),
		Escalate: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "escalate"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("alt+up"),
			key.WithHelp("M-up", "previous answer"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("alt+down"),
			key.WithHelp("M-down", "next answer"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "scroll down"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Feedback, k.Escalate, k.NewSession, k.Quit}
}

// FullHelp returns all bindings organized into groups.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.NewSession, k.Theme, k.Quit},
		{k.Feedback, k.QuickRate, k.Escalate},
		{k.FocusPrev, k.FocusNext, k.PageUp, k.PageDown},
	}
}
