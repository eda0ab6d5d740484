// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the conversation state machine and message types.
package model

import (
	"errors"
	"strings"

	"github.com/jeranaias/helpdesk-tui/internal/api"
)

// Validation errors. These are rejected locally and never reach the network.
var (
	// ErrEmptyMessage indicates the send text was empty or whitespace-only.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrSendPending indicates a send is already outstanding. Sends are
	// serialized by rejection, not queueing.
	ErrSendPending = errors.New("a send is already pending")
)

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the ordered message sequence and the pending-send flag.
//
// Invariants:
//   - The sequence is append-only chronological: no reordering, no deletion.
//   - Correlation between a user message and its assistant reply is
//     positional: the reply is simply the next element appended.
//   - Exactly one assistant entry (reply or error placeholder) follows each
//     completed send, never zero, never two.
//   - At most one send is outstanding, enforced by the pending guard.
type Conversation struct {
	messages []*Message
	pending  bool
}

// NewConversation creates an empty conversation.
func NewConversation() *Conversation {
	return &Conversation{messages: make([]*Message, 0)}
}

// =============================================================================
// SEND LIFECYCLE
// =============================================================================

// AppendUser optimistically appends a user message and marks a send as
// pending. The message appears in the sequence before any network round-trip
// completes. Blank text and overlapping sends are rejected as no-ops.
func (c *Conversation) AppendUser(text string) (*Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	if c.pending {
		return nil, ErrSendPending
	}

	msg := NewUserMessage(text)
	c.messages = append(c.messages, msg)
	c.pending = true
	return msg, nil
}

// ReconcileReply completes the outstanding send with the backend's answer.
// It appends exactly one assistant message and clears the pending flag.
// A nil reply is reconciled as a failure so the turn is never dropped.
func (c *Conversation) ReconcileReply(reply *api.ChatReply) *Message {
	if reply == nil {
		return c.ReconcileFailure()
	}
	msg := NewAssistantMessage(reply)
	c.messages = append(c.messages, msg)
	c.pending = false
	return msg
}

// ReconcileFailure completes the outstanding send with the fixed error
// placeholder, preserving user/assistant alternation.
func (c *Conversation) ReconcileFailure() *Message {
	msg := NewErrorMessage()
	c.messages = append(c.messages, msg)
	c.pending = false
	return msg
}

// Pending reports whether a send is outstanding.
func (c *Conversation) Pending() bool {
	return c.pending
}

// =============================================================================
// SEQUENCE ACCESS
// =============================================================================

// ResetTo replaces the entire sequence and clears the pending flag. Used
// when a session is restored (seed with history) or created (seed empty).
func (c *Conversation) ResetTo(messages []*Message) {
	c.messages = make([]*Message, 0, len(messages))
	c.messages = append(c.messages, messages...)
	c.pending = false
}

// Messages returns the ordered message sequence.
func (c *Conversation) Messages() []*Message {
	return c.messages
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// IsEmpty returns true if there are no messages.
func (c *Conversation) IsEmpty() bool {
	return len(c.messages) == 0
}

// ByLocalID returns the message with the given local id, or nil.
func (c *Conversation) ByLocalID(localID string) *Message {
	for _, msg := range c.messages {
		if msg.LocalID == localID {
			return msg
		}
	}
	return nil
}

// MarkRated sets the rated flag on the message with the given local id.
// Returns false if no such message exists. Rating a message is one-way:
// the flag is never cleared for the lifetime of the sequence.
func (c *Conversation) MarkRated(localID string) bool {
	msg := c.ByLocalID(localID)
	if msg == nil {
		return false
	}
	msg.Rated = true
	return true
}

// SeedFromHistory converts backend history messages into the local model,
// preserving the backend's chronological order unmutated.
func SeedFromHistory(history []api.HistoryMessage) []*Message {
	messages := make([]*Message, 0, len(history))
	for _, h := range history {
		messages = append(messages, FromHistory(h))
	}
	return messages
}
