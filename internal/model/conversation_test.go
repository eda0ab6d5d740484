// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/helpdesk-tui/internal/api"
)

func floatPtr(f float64) *float64 { return &f }

// =============================================================================
// APPEND / PENDING GUARD TESTS
// =============================================================================

func TestAppendUser_Optimistic(t *testing.T) {
	conv := NewConversation()

	msg, err := conv.AppendUser("hello")
	require.NoError(t, err)
	require.NotNil(t, msg)

	// The user's turn is visible before any reply exists.
	assert.Equal(t, 1, conv.Len())
	assert.Equal(t, RoleUser, conv.Messages()[0].Role)
	assert.Equal(t, "hello", conv.Messages()[0].Content)
	assert.True(t, conv.Pending())
	assert.NotEmpty(t, msg.LocalID)
	assert.Empty(t, msg.MessageID, "user messages never receive a backend id")
}

func TestAppendUser_RejectsBlankText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"whitespace mix", " \t\n "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			conv := NewConversation()
			_, err := conv.AppendUser(tc.text)
			assert.ErrorIs(t, err, ErrEmptyMessage)
			assert.Equal(t, 0, conv.Len())
			assert.False(t, conv.Pending())
		})
	}
}

func TestAppendUser_RejectsWhilePending(t *testing.T) {
	conv := NewConversation()
	_, err := conv.AppendUser("first")
	require.NoError(t, err)

	// Second send is rejected, not buffered: sequence length unchanged.
	_, err = conv.AppendUser("second")
	assert.ErrorIs(t, err, ErrSendPending)
	assert.Equal(t, 1, conv.Len())
	assert.True(t, conv.Pending())
}

// =============================================================================
// RECONCILE TESTS
// =============================================================================

func TestReconcileReply_Success(t *testing.T) {
	conv := NewConversation()
	_, err := conv.AppendUser("hello")
	require.NoError(t, err)

	reply := &api.ChatReply{
		MessageID:  "m1",
		AnswerText: "hi",
		Confidence: floatPtr(0.92),
	}
	msg := conv.ReconcileReply(reply)

	require.Equal(t, 2, conv.Len())
	assert.Equal(t, RoleAssistant, msg.Role)
	assert.Equal(t, "hi", msg.Content)
	assert.Equal(t, "m1", msg.MessageID)
	require.NotNil(t, msg.Confidence)
	assert.InDelta(t, 0.92, *msg.Confidence, 1e-9)
	assert.False(t, conv.Pending())
	assert.True(t, msg.Actionable())
}

func TestReconcileFailure_AppendsPlaceholder(t *testing.T) {
	conv := NewConversation()
	_, err := conv.AppendUser("hello")
	require.NoError(t, err)

	msg := conv.ReconcileFailure()

	require.Equal(t, 2, conv.Len())
	assert.Equal(t, RoleAssistant, msg.Role)
	assert.Equal(t, ErrorPlaceholder, msg.Content)
	assert.Empty(t, msg.MessageID)
	assert.Nil(t, msg.Confidence)
	assert.False(t, conv.Pending())
	assert.False(t, msg.Actionable(), "error placeholder must not accept per-message actions")
}

func TestReconcileReply_NilIsFailure(t *testing.T) {
	conv := NewConversation()
	_, err := conv.AppendUser("hello")
	require.NoError(t, err)

	msg := conv.ReconcileReply(nil)
	assert.Equal(t, ErrorPlaceholder, msg.Content)
	assert.False(t, conv.Pending())
}

// TestAssistantEntryPerCompletedSend verifies the pairing invariant across a
// mixed sequence of successful and failed sends: one assistant entry per
// completed send, never more, never fewer.
func TestAssistantEntryPerCompletedSend(t *testing.T) {
	conv := NewConversation()
	outcomes := []bool{true, false, true, true, false}

	for i, ok := range outcomes {
		_, err := conv.AppendUser("turn")
		require.NoError(t, err, "send %d", i)
		if ok {
			conv.ReconcileReply(&api.ChatReply{AnswerText: "answer", MessageID: "m"})
		} else {
			conv.ReconcileFailure()
		}
	}

	assistants := 0
	for _, msg := range conv.Messages() {
		if msg.Role == RoleAssistant {
			assistants++
		}
	}
	assert.Equal(t, len(outcomes), assistants)
	assert.Equal(t, len(outcomes)*2, conv.Len())

	// Alternation holds: even indexes user, odd indexes assistant.
	for i, msg := range conv.Messages() {
		if i%2 == 0 {
			assert.Equal(t, RoleUser, msg.Role, "index %d", i)
		} else {
			assert.Equal(t, RoleAssistant, msg.Role, "index %d", i)
		}
	}
}

// =============================================================================
// RESET / SEEDING TESTS
// =============================================================================

func TestResetTo_ReplacesSequenceAndClearsPending(t *testing.T) {
	conv := NewConversation()
	_, err := conv.AppendUser("old")
	require.NoError(t, err)

	seed := []*Message{NewUserMessage("a"), NewErrorMessage()}
	conv.ResetTo(seed)

	assert.Equal(t, 2, conv.Len())
	assert.Equal(t, "a", conv.Messages()[0].Content)
	assert.False(t, conv.Pending())

	conv.ResetTo(nil)
	assert.True(t, conv.IsEmpty())
}

func TestSeedFromHistory_PreservesOrderUnmutated(t *testing.T) {
	history := []api.HistoryMessage{
		{ID: "", Role: "user", Content: "how do I reset my password?"},
		{ID: "m1", Role: "assistant", Content: "Use the reset link.", Confidence: floatPtr(0.8), Sources: []string{"faq:12"}},
		{ID: "", Role: "user", Content: "thanks"},
		{ID: "m2", Role: "assistant", Content: "Anytime."},
	}

	msgs := SeedFromHistory(history)
	require.Len(t, msgs, len(history))
	for i, h := range history {
		assert.Equal(t, Role(h.Role), msgs[i].Role, "index %d", i)
		assert.Equal(t, h.Content, msgs[i].Content, "index %d", i)
		assert.Equal(t, h.ID, msgs[i].MessageID, "index %d", i)
	}
	assert.Equal(t, []string{"faq:12"}, msgs[1].Sources)
	assert.True(t, msgs[1].Actionable())
	assert.False(t, msgs[0].Actionable())
}

// =============================================================================
// RATED FLAG TESTS
// =============================================================================

func TestMarkRated(t *testing.T) {
	conv := NewConversation()
	_, err := conv.AppendUser("q")
	require.NoError(t, err)
	msg := conv.ReconcileReply(&api.ChatReply{AnswerText: "a", MessageID: "m1"})

	assert.False(t, msg.Rated)
	assert.True(t, conv.MarkRated(msg.LocalID))
	assert.True(t, msg.Rated)

	assert.False(t, conv.MarkRated("local_nope"))
}

func TestMessage_Preview(t *testing.T) {
	msg := NewUserMessage("line one\nline two with some extra words")
	preview := msg.Preview(20)
	assert.Equal(t, "line one line two...", preview)
}
