// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/helpdesk-tui/internal/action"
	"github.com/jeranaias/helpdesk-tui/internal/api"
	"github.com/jeranaias/helpdesk-tui/internal/model"
	"github.com/jeranaias/helpdesk-tui/internal/session"
	"github.com/jeranaias/helpdesk-tui/internal/store"
	"github.com/jeranaias/helpdesk-tui/internal/ui/styles"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

// newTestModel builds a ready chat model backed by a throwaway session.
// Commands returned by Update are never executed, so the backend only
// serves the initial session creation.
func newTestModel(t *testing.T) Model {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"session_id":"sess-test"}`))
	}))
	t.Cleanup(srv.Close)

	st, err := store.OpenPath(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	client := api.NewClient(srv.URL)
	ctrl := session.NewController(st, client)
	result, err := ctrl.Bootstrap(context.Background())
	require.NoError(t, err)

	m := New(styles.NewTheme(styles.VariantDark), ctrl, client, st)
	updated, _ := m.Update(BootstrapDoneMsg{Result: result})
	return updated.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testReply(id string) *api.ChatReply {
	conf := 0.9
	return &api.ChatReply{
		MessageID:  id,
		AnswerText: "Here is the answer.",
		Confidence: &conf,
		Sources:    []string{"faq:1"},
	}
}

// sendAndReply drives one full user turn so the transcript has an
// actionable answer.
func sendAndReply(t *testing.T, m Model, id string) Model {
	t.Helper()
	m.input.SetValue("help me")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = apply(t, m, SendDoneMsg{Reply: testReply(id)})
	return m
}

// =============================================================================
// COMPOSER TESTS
// =============================================================================

func TestSubmitAppendsOptimistically(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("hello")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd, "submit should fire the send command")
	require.Equal(t, 1, m.Conversation().Len())
	assert.Equal(t, model.RoleUser, m.Conversation().Messages()[0].Role)
	assert.True(t, m.Conversation().Pending())
	assert.Empty(t, m.input.Value(), "composer clears after submit")
}

func TestSubmitWhilePendingRejected(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("first")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m.input.SetValue("second")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, m.Conversation().Len(), "pending send must block a second one")
}

func TestSubmitBlankIsIgnored(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("   ")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Conversation().Len())
}

func TestSendDoneReconcilesReply(t *testing.T) {
	m := newTestModel(t)
	m = sendAndReply(t, m, "m1")

	require.Equal(t, 2, m.Conversation().Len())
	agent := m.Conversation().Messages()[1]
	assert.Equal(t, model.RoleAssistant, agent.Role)
	assert.Equal(t, "m1", agent.MessageID)
	assert.False(t, m.Conversation().Pending())

	require.NotNil(t, m.FocusedMessage(), "newest answer becomes the action target")
	assert.Equal(t, agent.LocalID, m.FocusedMessage().LocalID)
}

func TestSendDoneFailureAppendsPlaceholder(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("hello")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = apply(t, m, SendDoneMsg{Err: assert.AnError})

	require.Equal(t, 2, m.Conversation().Len())
	placeholder := m.Conversation().Messages()[1]
	assert.True(t, placeholder.IsError)
	assert.False(t, placeholder.Actionable())
	assert.False(t, m.Conversation().Pending(), "failure unblocks the composer")
	assert.True(t, m.statusErr)
}

func TestBootstrapFailureDisablesComposer(t *testing.T) {
	m := newTestModel(t)
	m, _ = apply(t, m, BootstrapDoneMsg{Err: assert.AnError})

	require.Equal(t, StateFailed, m.State())

	m.input.SetValue("hello")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0, m.Conversation().Len())
	assert.NotNil(t, cmd, "status expiry timer still fires")
	assert.True(t, m.statusErr)
}

// =============================================================================
// SESSION TESTS
// =============================================================================

func TestNewSessionResetsTranscript(t *testing.T) {
	m := newTestModel(t)
	m = sendAndReply(t, m, "m1")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	require.NotNil(t, cmd)
	assert.Equal(t, StateBootstrapping, m.State())

	m, _ = apply(t, m, NewSessionDoneMsg{Result: &session.Result{SessionID: "sess-new"}})
	assert.Equal(t, StateReady, m.State())
	assert.True(t, m.Conversation().IsEmpty())
	assert.Nil(t, m.FocusedMessage())
}

func TestNewSessionBlockedWhilePending(t *testing.T) {
	m := newTestModel(t)
	m.input.SetValue("hello")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})

	assert.Equal(t, StateReady, m.State(), "reset must wait for the in-flight send")
	assert.Equal(t, 1, m.Conversation().Len())
}

// =============================================================================
// THEME TESTS
// =============================================================================

func TestThemeTogglePersists(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, styles.VariantDark, m.Theme().Variant)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})

	assert.Equal(t, styles.VariantLight, m.Theme().Variant)
	saved, ok := m.store.Theme()
	require.True(t, ok)
	assert.Equal(t, "light", saved)
}

// =============================================================================
// FEEDBACK TESTS
// =============================================================================

func TestFeedbackModalLifecycle(t *testing.T) {
	m := newTestModel(t)
	m = sendAndReply(t, m, "m1")
	target := m.FocusedMessage()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	require.Equal(t, modalFeedback, m.modal)

	// Rating is required before submit.
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modalFeedback, m.modal)
	assert.NotNil(t, cmd, "rating-unset warning arms the status timer")

	m, _ = press(t, m, keyRune('4'))
	assert.Equal(t, 4, m.feedback.Rating())

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, action.FlowSubmitting, m.feedback.State())

	m, _ = apply(t, m, FeedbackDoneMsg{LocalID: target.LocalID})
	assert.Equal(t, modalNone, m.modal)
	assert.True(t, m.Conversation().ByLocalID(target.LocalID).Rated)
}

func TestFeedbackModalEscCloses(t *testing.T) {
	m := newTestModel(t)
	m = sendAndReply(t, m, "m1")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	assert.Equal(t, modalNone, m.modal)
	assert.Equal(t, action.FlowIdle, m.feedback.State())
}

func TestFeedbackRequiresActionableMessage(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})

	assert.Equal(t, modalNone, m.modal, "empty transcript has nothing to rate")
	assert.True(t, m.statusErr)
}

func TestQuickRateMarksMessage(t *testing.T) {
	m := newTestModel(t)
	m = sendAndReply(t, m, "m1")
	target := m.FocusedMessage()

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	assert.Equal(t, modalNone, m.modal, "quick rate never opens the modal")

	m, _ = apply(t, m, FeedbackDoneMsg{LocalID: target.LocalID})
	assert.True(t, m.Conversation().ByLocalID(target.LocalID).Rated)
}

func TestFeedbackSubmitRejectedAfterQuickRateLands(t *testing.T) {
	m := newTestModel(t)
	m = sendAndReply(t, m, "m1")
	target := m.FocusedMessage()

	// Quick-rate is in flight when the modal opens on the same message.
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	require.Equal(t, modalFeedback, m.modal)

	// The quick-rate result marks the message while the modal is open.
	m, _ = apply(t, m, FeedbackDoneMsg{LocalID: target.LocalID})
	require.True(t, m.Conversation().ByLocalID(target.LocalID).Rated)
	require.Equal(t, modalFeedback, m.modal, "an unsubmitted modal is untouched by the result")

	// Submitting now must not issue a second rating.
	m, _ = press(t, m, keyRune('3'))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, action.FlowIdle, m.feedback.State())
	assert.Equal(t, modalNone, m.modal)
	assert.True(t, m.statusErr)
}

func TestFeedbackModalIgnoresForeignResult(t *testing.T) {
	m := newTestModel(t)
	m = sendAndReply(t, m, "m1")
	m = sendAndReply(t, m, "m2")
	second := m.FocusedMessage()

	// Quick-rate the older answer, then submit the modal on the newer one.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp, Alt: true})
	first := m.FocusedMessage()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown, Alt: true})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlF})
	m, _ = press(t, m, keyRune('4'))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, action.FlowSubmitting, m.feedback.State())

	// The quick-rate result for the other message must not settle the modal.
	m, _ = apply(t, m, FeedbackDoneMsg{LocalID: first.LocalID})
	assert.Equal(t, modalFeedback, m.modal)
	assert.Equal(t, action.FlowSubmitting, m.feedback.State())
	assert.True(t, m.Conversation().ByLocalID(first.LocalID).Rated)

	// Its own result does.
	m, _ = apply(t, m, FeedbackDoneMsg{LocalID: second.LocalID})
	assert.Equal(t, modalNone, m.modal)
	assert.True(t, m.Conversation().ByLocalID(second.LocalID).Rated)
}

func TestQuickRateRejectedWhenAlreadyRated(t *testing.T) {
	m := newTestModel(t)
	m = sendAndReply(t, m, "m1")
	target := m.FocusedMessage()
	m.Conversation().MarkRated(target.LocalID)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.True(t, m.statusErr)
}

// =============================================================================
// ESCALATION TESTS
// =============================================================================

func TestEscalationFlowLifecycle(t *testing.T) {
	m := newTestModel(t)
	m = sendAndReply(t, m, "m1")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	require.Equal(t, modalEscalation, m.modal)
	assert.Equal(t, action.ReasonBilling, m.escalation.Reason())
	assert.Equal(t, action.SeverityMedium, m.escalation.Severity())

	m, _ = press(t, m, keyRune('r'))
	assert.Equal(t, action.ReasonTechnical, m.escalation.Reason())
	m, _ = press(t, m, keyRune('s'))
	assert.Equal(t, action.SeverityHigh, m.escalation.Severity())

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, action.FlowSubmitting, m.escalation.State())

	ticket := &api.Ticket{TicketRef: "TICK-2024-001", Status: "open", EstimatedResponseTime: "4 hours"}
	m, _ = apply(t, m, EscalationDoneMsg{Ticket: ticket})

	assert.Equal(t, modalEscalation, m.modal, "ticket view stays open until dismissed")
	assert.Equal(t, action.FlowResolved, m.escalation.State())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, modalNone, m.modal)
	assert.Nil(t, m.escalation.Ticket())
}

func TestEscalationFailureKeepsFormOpen(t *testing.T) {
	m := newTestModel(t)
	m = sendAndReply(t, m, "m1")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	m, _ = press(t, m, keyRune('r'))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = apply(t, m, EscalationDoneMsg{Err: assert.AnError})

	// The form survives the failure with its selections, ready to resubmit.
	assert.Equal(t, modalEscalation, m.modal)
	assert.Equal(t, action.FlowIdle, m.escalation.State())
	assert.Equal(t, action.ReasonTechnical, m.escalation.Reason())
	assert.True(t, m.statusErr)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "resubmit fires a fresh escalation")
	assert.Equal(t, action.FlowSubmitting, m.escalation.State())
}

// =============================================================================
// FOCUS TESTS
// =============================================================================

func TestFocusCyclesActionableMessages(t *testing.T) {
	m := newTestModel(t)
	m = sendAndReply(t, m, "m1")
	m = sendAndReply(t, m, "m2")

	require.Equal(t, "m2", m.FocusedMessage().MessageID)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp, Alt: true})
	assert.Equal(t, "m1", m.FocusedMessage().MessageID)

	// Clamped at the oldest answer.
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp, Alt: true})
	assert.Equal(t, "m1", m.FocusedMessage().MessageID)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown, Alt: true})
	assert.Equal(t, "m2", m.FocusedMessage().MessageID)
}
