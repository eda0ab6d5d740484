// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the conversation state machine and message types.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/helpdesk-tui/internal/api"
	"github.com/jeranaias/helpdesk-tui/internal/util"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleAssistant:
		return "Agent"
	default:
		return string(r)
	}
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// ErrorPlaceholder is the fixed assistant-role content appended when a send
// fails, so the turn stays visibly answered and alternation is preserved.
const ErrorPlaceholder = "⚠ Could not reach the support agent. Please try again."

// Message represents a single message in a conversation.
//
// LocalID is generated client-side at append time and only identifies the
// message within this process (list focus, feedback correlation). MessageID
// is backend-assigned and exists only on assistant messages once the backend
// has confirmed them; user messages never receive one. Per-message actions
// require a non-empty MessageID.
type Message struct {
	// Identity
	LocalID   string    `json:"local_id"`
	MessageID string    `json:"message_id,omitempty"`
	Role      Role      `json:"role"`
	Timestamp time.Time `json:"timestamp"`

	// Content
	Content string `json:"content"`

	// Advisory metadata (assistant messages only)
	Confidence *float64 `json:"confidence,omitempty"`
	Sources    []string `json:"sources,omitempty"`

	// Transient UI flags
	Rated   bool `json:"-"`
	IsError bool `json:"-"`
}

// NewUserMessage creates a user message with a fresh local id.
func NewUserMessage(content string) *Message {
	return &Message{
		LocalID:   newLocalID(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewAssistantMessage builds an assistant message from a backend reply.
func NewAssistantMessage(reply *api.ChatReply) *Message {
	return &Message{
		LocalID:    newLocalID(),
		MessageID:  reply.MessageID,
		Role:       RoleAssistant,
		Content:    reply.AnswerText,
		Confidence: reply.Confidence,
		Sources:    reply.Sources,
		Timestamp:  time.Now(),
	}
}

// NewErrorMessage builds the assistant-role error placeholder for a failed
// send. It carries no backend id and no confidence, so per-message actions
// stay disabled on it.
func NewErrorMessage() *Message {
	return &Message{
		LocalID:   newLocalID(),
		Role:      RoleAssistant,
		Content:   ErrorPlaceholder,
		Timestamp: time.Now(),
		IsError:   true,
	}
}

// FromHistory converts a backend history message into the local model.
func FromHistory(h api.HistoryMessage) *Message {
	ts := h.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return &Message{
		LocalID:    newLocalID(),
		MessageID:  h.ID,
		Role:       Role(h.Role),
		Content:    h.Content,
		Confidence: h.Confidence,
		Sources:    h.Sources,
		Timestamp:  ts,
	}
}

// Actionable reports whether per-message flows (rate, escalate) may target
// this message: assistant role with a backend-assigned id, and not the error
// placeholder.
func (m *Message) Actionable() bool {
	return m.Role == RoleAssistant && m.MessageID != "" && !m.IsError
}

// Preview returns a single-line truncated preview of the message content.
func (m *Message) Preview(maxLen int) string {
	return util.TruncateRunes(util.CollapseWhitespace(m.Content), maxLen)
}

// newLocalID creates a process-local message identifier.
func newLocalID() string {
	return "local_" + uuid.NewString()
}
