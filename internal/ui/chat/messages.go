// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the helpdesk TUI.
//
// This file defines all Bubble Tea message types used by the chat interface.
// Messages are organized into the following categories:
//   - Session: Bootstrap and new-session results
//   - Chat: Reply delivery for in-flight sends
//   - Actions: Feedback and escalation results
//   - UI State: Transient status line expiry
//
// All message types follow Bubble Tea conventions and are immutable.
package chat

import (
	"github.com/jeranaias/helpdesk-tui/internal/api"
	"github.com/jeranaias/helpdesk-tui/internal/session"
)

// =============================================================================
// SESSION MESSAGES
// =============================================================================

// BootstrapDoneMsg delivers the result of the startup session bootstrap.
type BootstrapDoneMsg struct {
	Result *session.Result
	Err    error
}

// NewSessionDoneMsg delivers the result of an explicit new-session request.
type NewSessionDoneMsg struct {
	Result *session.Result
	Err    error
}

// =============================================================================
// CHAT MESSAGES
// =============================================================================

// SendDoneMsg delivers the backend reply for the in-flight send. A nil Reply
// with a nil Err never occurs; either the reply or the error is set.
type SendDoneMsg struct {
	Reply *api.ChatReply
	Err   error
}

// =============================================================================
// ACTION MESSAGES
// =============================================================================

// FeedbackDoneMsg reports the outcome of a feedback submission. LocalID
// identifies the rated message so the conversation can mark it.
type FeedbackDoneMsg struct {
	LocalID string
	Err     error
}

// EscalationDoneMsg reports the outcome of an escalation submission.
type EscalationDoneMsg struct {
	Ticket *api.Ticket
	Err    error
}

// =============================================================================
// UI STATE MESSAGES
// =============================================================================

// statusClearMsg expires the transient status line. The sequence number
// guards against a stale timer clearing a newer status.
type statusClearMsg struct {
	seq int
}
