// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the typed HTTP client for the support-agent backend.
package api

import "time"

// =============================================================================
// WIRE TYPES
// =============================================================================
//
// Field names mirror the backend's JSON schema exactly. Optional fields use
// pointer types rather than sentinel values so absence is representable.

// createSessionRequest is the body for POST /session.
type createSessionRequest struct {
	UserID string `json:"user_id,omitempty"`
}

// createSessionResponse is the body returned by POST /session.
type createSessionResponse struct {
	SessionID string `json:"session_id"`
}

// HistoryMessage is a single persisted message returned by the history
// endpoint. Assistant messages carry a backend-assigned id; confidence and
// sources are advisory and may be absent.
type HistoryMessage struct {
	ID         string    `json:"id,omitempty"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	Confidence *float64  `json:"confidence,omitempty"`
	Sources    []string  `json:"sources,omitempty"`
	Timestamp  time.Time `json:"timestamp,omitempty"`
}

// historyResponse is the body returned by GET /session/{id}/history.
type historyResponse struct {
	SessionID string           `json:"session_id"`
	Messages  []HistoryMessage `json:"messages"`
}

// chatRequest is the body for POST /chat.
type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Stream    bool   `json:"stream"`
}

// ChatReply is the assistant's answer to one user message.
//
// MessageID may be absent on older backends; callers must treat it as
// genuinely optional and disable per-message actions when it is empty.
type ChatReply struct {
	MessageID  string   `json:"message_id,omitempty"`
	AnswerText string   `json:"answer_text"`
	Confidence *float64 `json:"confidence,omitempty"`
	Sources    []string `json:"sources,omitempty"`
	NextAction string   `json:"next_action,omitempty"`
}

// feedbackRequest is the body for POST /feedback.
type feedbackRequest struct {
	SessionID string `json:"session_id"`
	MessageID string `json:"message_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

// escalateRequest is the body for POST /escalate.
type escalateRequest struct {
	SessionID string `json:"session_id"`
	MessageID string `json:"message_id"`
	Reason    string `json:"reason"`
	Severity  string `json:"severity"`
}

// Ticket is the escalation ticket created by the backend. It is ephemeral on
// the client: held only while the confirmation view is open.
type Ticket struct {
	TicketRef             string `json:"ticket_ref"`
	Status                string `json:"status,omitempty"`
	EstimatedResponseTime string `json:"estimated_response_time"`
}
