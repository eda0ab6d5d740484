// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the helpdesk TUI.
package chat

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/helpdesk-tui/internal/action"
	"github.com/jeranaias/helpdesk-tui/internal/model"
	"github.com/jeranaias/helpdesk-tui/internal/session"
)

// =============================================================================
// UPDATE DISPATCH
// =============================================================================

// Update handles all incoming messages. Every mutation of the conversation
// and the flows happens here, on the event loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case BootstrapDoneMsg:
		return m.handleBootstrapDone(msg)

	case NewSessionDoneMsg:
		return m.handleNewSessionDone(msg)

	case SendDoneMsg:
		return m.handleSendDone(msg)

	case FeedbackDoneMsg:
		return m.handleFeedbackDone(msg)

	case EscalationDoneMsg:
		return m.handleEscalationDone(msg)

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	return m, nil
}

// handleResize recalculates the layout for a new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	// Header, typing line, composer, and status bar surround the viewport.
	chrome := 8
	vpHeight := msg.Height - chrome
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.viewport.Width = msg.Width
	m.viewport.Height = vpHeight
	m.input.Width = msg.Width - 6
	m.commentInput.Width = msg.Width - 20

	m.renderer = newMarkdownRenderer(m.theme.Variant, m.wrapWidth())
	m.refreshViewport()
	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit works everywhere, including inside modals.
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	// An open modal owns the keyboard.
	switch m.modal {
	case modalFeedback:
		return m.handleFeedbackKey(msg)
	case modalEscalation:
		return m.handleEscalationKey(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Submit):
		return m.submit()

	case key.Matches(msg, m.keyMap.NewSession):
		return m.startNewSession()

	case key.Matches(msg, m.keyMap.Theme):
		m.setTheme(m.theme.Variant.Toggle())
		m.refreshViewport()
		return m, m.setStatus("Theme: "+m.theme.Variant.String(), false)

	case key.Matches(msg, m.keyMap.QuickRate):
		return m.quickRate()

	case key.Matches(msg, m.keyMap.Feedback):
		return m.openFeedback()

	case key.Matches(msg, m.keyMap.Escalate):
		return m.openEscalation()

	case key.Matches(msg, m.keyMap.FocusPrev):
		m.moveFocus(-1)
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.FocusNext):
		m.moveFocus(1)
		m.refreshViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// COMPOSER ACTIONS
// =============================================================================

// submit appends the user turn optimistically and fires the send. The
// conversation enforces the single-flight and non-blank rules.
func (m Model) submit() (tea.Model, tea.Cmd) {
	// Both gates: the controller readiness and the UI phase. The controller
	// can turn Ready before the bootstrap result has seeded the transcript.
	sessionID, err := m.controller.RequireID()
	if errors.Is(err, session.ErrNotReady) || m.state != StateReady {
		return m, m.setStatus("Still connecting to support...", true)
	}

	userMsg, err := m.conversation.AppendUser(m.input.Value())
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyMessage):
			return m, nil
		case errors.Is(err, model.ErrSendPending):
			return m, m.setStatus("Waiting for the current reply...", true)
		default:
			return m, m.setStatus(err.Error(), true)
		}
	}

	m.input.Reset()
	m.refreshViewport()
	return m, tea.Batch(
		SendCmd(m.client, sessionID, userMsg.Content),
		m.spinner.Tick,
	)
}

// startNewSession discards the stored session and creates a fresh one.
func (m Model) startNewSession() (tea.Model, tea.Cmd) {
	if m.conversation.Pending() {
		return m, m.setStatus("Waiting for the current reply...", true)
	}
	if m.state == StateBootstrapping {
		return m, nil
	}

	m.state = StateBootstrapping
	return m, tea.Batch(
		NewSessionCmd(m.controller),
		m.spinner.Tick,
		m.setStatus("Starting a new session...", false),
	)
}

// =============================================================================
// ACTION TRIGGERS
// =============================================================================

// quickRate fires the one-keystroke thumbs-up on the focused answer.
func (m Model) quickRate() (tea.Model, tea.Cmd) {
	req, err := action.QuickFeedback(m.controller.ID(), m.FocusedMessage())
	if err != nil {
		return m, m.actionErrorStatus(err)
	}
	return m, tea.Batch(
		FeedbackCmd(m.client, req),
		m.setStatus("Sending your rating...", false),
	)
}

func (m Model) openFeedback() (tea.Model, tea.Cmd) {
	if err := m.feedback.Open(m.controller.ID(), m.FocusedMessage()); err != nil {
		return m, m.actionErrorStatus(err)
	}
	m.modal = modalFeedback
	m.commentFocused = false
	m.commentInput.Reset()
	m.commentInput.Blur()
	m.input.Blur()
	return m, nil
}

func (m Model) openEscalation() (tea.Model, tea.Cmd) {
	if err := m.escalation.Open(m.controller.ID(), m.FocusedMessage()); err != nil {
		return m, m.actionErrorStatus(err)
	}
	m.modal = modalEscalation
	m.input.Blur()
	return m, nil
}

// actionErrorStatus maps flow precondition errors onto user-facing text.
func (m *Model) actionErrorStatus(err error) tea.Cmd {
	switch {
	case errors.Is(err, action.ErrNoSession):
		return m.setStatus("No active session yet", true)
	case errors.Is(err, action.ErrNoMessageID):
		return m.setStatus("No answer to act on", true)
	case errors.Is(err, action.ErrAlreadyRated):
		return m.setStatus("You already rated this answer", true)
	default:
		return m.setStatus(err.Error(), true)
	}
}

// =============================================================================
// FEEDBACK MODAL KEYS
// =============================================================================

func (m Model) handleFeedbackKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	submitting := m.feedback.State() == action.FlowSubmitting

	switch {
	case key.Matches(msg, m.keyMap.Cancel):
		if submitting {
			return m, nil
		}
		m.feedback.Close()
		m.closeModal()
		return m, nil

	case msg.String() == "tab":
		if submitting {
			return m, nil
		}
		m.commentFocused = !m.commentFocused
		if m.commentFocused {
			m.commentInput.Focus()
		} else {
			m.commentInput.Blur()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		return m.submitFeedback()
	}

	if submitting {
		return m, nil
	}

	if m.commentFocused {
		var cmd tea.Cmd
		m.commentInput, cmd = m.commentInput.Update(msg)
		return m, cmd
	}

	// Star row: digits pick a rating directly, arrows adjust it.
	switch s := msg.String(); s {
	case "1", "2", "3", "4", "5":
		_ = m.feedback.SetRating(int(s[0] - '0'))
	case "left":
		if r := m.feedback.Rating(); r > 1 {
			_ = m.feedback.SetRating(r - 1)
		}
	case "right":
		if r := m.feedback.Rating(); r < 5 {
			_ = m.feedback.SetRating(r + 1)
		} else if r == 0 {
			_ = m.feedback.SetRating(1)
		}
	}
	return m, nil
}

func (m Model) submitFeedback() (tea.Model, tea.Cmd) {
	m.feedback.SetComment(m.commentInput.Value())
	req, err := m.feedback.Submit()
	if err != nil {
		switch {
		case errors.Is(err, action.ErrFlowBusy):
			return m, nil
		case errors.Is(err, action.ErrRatingUnset):
			return m, m.setStatus("Pick a rating first", true)
		case errors.Is(err, action.ErrAlreadyRated):
			// A quick-rate landed on this message while the modal was open.
			m.feedback.Close()
			m.closeModal()
			return m, m.setStatus("You already rated this answer", true)
		default:
			return m, m.setStatus(err.Error(), true)
		}
	}
	return m, tea.Batch(FeedbackCmd(m.client, req), m.spinner.Tick)
}

// =============================================================================
// ESCALATION MODAL KEYS
// =============================================================================

func (m Model) handleEscalationKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.escalation.State() {
	case action.FlowSubmitting:
		return m, nil

	case action.FlowResolved:
		// Ticket view: any dismiss key closes and discards the ticket.
		if key.Matches(msg, m.keyMap.Cancel) || key.Matches(msg, m.keyMap.Submit) {
			m.escalation.Close()
			m.closeModal()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Cancel):
		m.escalation.Close()
		m.closeModal()
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		req, err := m.escalation.Submit()
		if err != nil {
			if errors.Is(err, action.ErrFlowBusy) {
				return m, nil
			}
			return m, m.setStatus(err.Error(), true)
		}
		return m, tea.Batch(EscalateCmd(m.client, req), m.spinner.Tick)
	}

	switch msg.String() {
	case "r":
		m.escalation.CycleReason()
	case "s":
		m.escalation.CycleSeverity()
	}
	return m, nil
}

// closeModal returns keyboard ownership to the composer.
func (m *Model) closeModal() {
	m.modal = modalNone
	m.commentFocused = false
	m.commentInput.Blur()
	m.input.Focus()
}

// =============================================================================
// RESULT HANDLERS
// =============================================================================

func (m Model) handleBootstrapDone(msg BootstrapDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.state = StateFailed
		return m, m.setStatus("Could not connect to the support backend", true)
	}

	m.state = StateReady
	m.conversation.ResetTo(msg.Result.Messages)
	m.focusNewest()
	m.refreshViewport()

	if msg.Result.Restored && len(msg.Result.Messages) > 0 {
		return m, m.setStatus("Restored previous conversation", false)
	}
	return m, nil
}

func (m Model) handleNewSessionDone(msg NewSessionDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		if m.controller.Ready() {
			m.state = StateReady
		} else {
			m.state = StateFailed
		}
		return m, m.setStatus("Could not start a new session", true)
	}

	m.state = StateReady
	m.conversation.ResetTo(nil)
	m.focusLocal = ""
	m.refreshViewport()
	return m, m.setStatus("Started a new session", false)
}

func (m Model) handleSendDone(msg SendDoneMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if msg.Err != nil || msg.Reply == nil {
		m.conversation.ReconcileFailure()
		cmd = m.setStatus("Could not reach the support agent", true)
	} else {
		m.conversation.ReconcileReply(msg.Reply)
		m.focusNewest()
	}
	m.refreshViewport()
	return m, cmd
}

func (m Model) handleFeedbackDone(msg FeedbackDoneMsg) (tea.Model, tea.Cmd) {
	// The modal flow resolves only on its own result. A quick-rate result for
	// another message can land while the modal submission is in flight and
	// must not settle it.
	if m.feedback.State() == action.FlowSubmitting &&
		m.feedback.Target() != nil && m.feedback.Target().LocalID == msg.LocalID {
		m.feedback.Resolve(msg.Err)
		m.feedback.Close()
		m.closeModal()
	}

	if msg.Err != nil {
		return m, m.setStatus("Could not submit feedback", true)
	}

	m.conversation.MarkRated(msg.LocalID)
	m.refreshViewport()
	return m, m.setStatus("Thanks for the feedback!", false)
}

func (m Model) handleEscalationDone(msg EscalationDoneMsg) (tea.Model, tea.Cmd) {
	if m.escalation.State() != action.FlowSubmitting {
		return m, nil
	}

	m.escalation.Resolve(msg.Ticket, msg.Err)
	if msg.Err != nil || msg.Ticket == nil {
		// The form stays open with its values so the user can resubmit.
		return m, m.setStatus("Could not escalate. Please try again.", true)
	}

	// Resolved: the modal stays open showing the ticket until dismissed.
	return m, nil
}

// refreshViewport re-renders the transcript and keeps the view pinned to the
// newest message.
func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
