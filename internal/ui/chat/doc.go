// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the chat view component for the helpdesk TUI.

The view is a single Bubble Tea model: a scrollable transcript, a one-line
composer, and two modal overlays (feedback and escalation). All state changes
happen inside Update; network calls run as tea.Cmd goroutines and report back
through the message types in messages.go, so the conversation is never touched
from more than one goroutine.

# Key Types

  - Model - The Bubble Tea model for the whole chat screen
  - KeyMap - Keyboard bindings with help text
  - BootstrapDoneMsg, SendDoneMsg, FeedbackDoneMsg, EscalationDoneMsg -
    Results delivered from command goroutines

# Message Flow

Submitting input appends the user turn optimistically, marks the conversation
pending, and fires SendCmd. The matching SendDoneMsg reconciles the reply (or
an error placeholder) and clears the pending flag. At most one send is in
flight; the composer rejects input while pending.

# Modals

The feedback and escalation overlays wrap the flows in the action package.
While a modal is open it owns the keyboard; Esc closes it without side
effects unless a submit is already in flight.
*/
package chat
