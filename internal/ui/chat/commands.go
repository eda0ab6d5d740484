// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the helpdesk TUI.
//
// This file defines the tea.Cmd constructors that run backend calls off the
// event loop. Each command owns its context; results come back as the
// message types in messages.go and are applied inside Update.
package chat

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/helpdesk-tui/internal/action"
	"github.com/jeranaias/helpdesk-tui/internal/api"
	"github.com/jeranaias/helpdesk-tui/internal/session"
)

// Command timeouts. The transport applies its own per-request timeout; these
// bound the whole operation including the rate limiter wait.
const (
	bootstrapTimeout = 45 * time.Second
	sendTimeout      = 90 * time.Second
	actionTimeout    = 30 * time.Second
)

// BootstrapCmd restores or creates the backend session at startup.
func BootstrapCmd(ctrl *session.Controller) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
		defer cancel()

		result, err := ctrl.Bootstrap(ctx)
		return BootstrapDoneMsg{Result: result, Err: err}
	}
}

// NewSessionCmd discards the current session and creates a fresh one.
func NewSessionCmd(ctrl *session.Controller) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
		defer cancel()

		result, err := ctrl.StartNew(ctx)
		return NewSessionDoneMsg{Result: result, Err: err}
	}
}

// SendCmd submits one user message and delivers the reply.
func SendCmd(client *api.Client, sessionID, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		reply, err := client.SendMessage(ctx, sessionID, text)
		return SendDoneMsg{Reply: reply, Err: err}
	}
}

// FeedbackCmd submits a validated feedback request.
func FeedbackCmd(client *api.Client, req *action.FeedbackRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()

		err := client.SubmitFeedback(ctx, req.SessionID, req.MessageID, req.Rating, req.Comment)
		return FeedbackDoneMsg{LocalID: req.LocalID, Err: err}
	}
}

// EscalateCmd submits a validated escalation request.
func EscalateCmd(client *api.Client, req *action.EscalationRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()

		ticket, err := client.SubmitEscalation(ctx, req.SessionID, req.MessageID,
			string(req.Reason), string(req.Severity))
		return EscalationDoneMsg{Ticket: ticket, Err: err}
	}
}

// clearStatusCmd expires the status line after a short delay.
func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}
