// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the helpdesk TUI.
//
// This file renders the whole screen: header, transcript viewport, typing
// indicator, composer, status bar, and the modal overlays. Rendering is pure;
// nothing in here mutates model state except the viewport content refresh
// driven from Update.
package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/helpdesk-tui/internal/action"
	"github.com/jeranaias/helpdesk-tui/internal/model"
	"github.com/jeranaias/helpdesk-tui/internal/ui/styles"
	"github.com/jeranaias/helpdesk-tui/internal/util"
)

const (
	// focusMarker flags the answer that feedback and escalation target.
	focusMarker = "▸ "

	confidenceBarWidth = 10
)

// =============================================================================
// TOP-LEVEL VIEW
// =============================================================================

// View renders the complete chat screen.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	sections := []string{
		m.renderHeader(),
		m.viewport.View(),
		m.renderTypingLine(),
	}

	switch m.modal {
	case modalFeedback:
		sections = append(sections, m.renderFeedbackModal())
	case modalEscalation:
		sections = append(sections, m.renderEscalationModal())
	default:
		sections = append(sections, m.renderComposer())
	}

	sections = append(sections, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// =============================================================================
// HEADER
// =============================================================================

func (m Model) renderHeader() string {
	title := m.theme.HeaderTitle.Render("Helpdesk")
	subtitle := m.theme.HeaderSubtitle.Render(" support chat")

	tag := ""
	if id := m.controller.ID(); id != "" {
		tag = m.theme.SessionTag.Render("session " + util.TruncateRunes(id, 18))
	}

	left := title + subtitle
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(tag) - 4
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + tag
	return m.theme.Header.Width(m.width - 2).Render(line)
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// renderTranscript renders every message as a bubble with its meta lines.
func (m *Model) renderTranscript() string {
	if m.conversation.IsEmpty() {
		return m.renderWelcome()
	}

	var parts []string
	for _, msg := range m.conversation.Messages() {
		parts = append(parts, m.renderMessage(msg))
	}
	return strings.Join(parts, "\n\n")
}

func (m *Model) renderWelcome() string {
	lines := []string{
		m.theme.WelcomeText.Render("Hi! Ask a question to get started."),
		"",
		m.theme.WelcomeText.Render("Press ") +
			m.theme.WelcomeKey.Render("C-f") +
			m.theme.WelcomeText.Render(" to rate an answer, ") +
			m.theme.WelcomeKey.Render("C-e") +
			m.theme.WelcomeText.Render(" to reach a human."),
	}
	box := m.theme.WelcomeBox.Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box)
}

func (m *Model) renderMessage(msg *model.Message) string {
	bubbleWidth := m.width - 12
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	label := msg.Role.DisplayName() + " " + m.theme.Timestamp.Render(relativeTime(msg.Timestamp))
	if msg.LocalID == m.focusLocal && msg.Actionable() {
		label = m.theme.HeaderTitle.Render(focusMarker) + label
	}
	label = m.theme.RoleLabel.Render(label)

	switch {
	case msg.IsError:
		bubble := m.theme.ErrorBubble.MaxWidth(bubbleWidth).Render(msg.Content)
		return label + "\n" + bubble

	case msg.Role == model.RoleUser:
		bubble := m.theme.UserBubble.MaxWidth(bubbleWidth).Render(msg.Content)
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, label) + "\n" +
			lipgloss.PlaceHorizontal(m.width, lipgloss.Right, bubble)

	default:
		content := m.renderMarkdown(msg.Content)
		bubble := m.theme.AgentBubble.MaxWidth(bubbleWidth).Render(content)
		out := label + "\n" + bubble
		if meta := m.renderMeta(msg); meta != "" {
			out += "\n" + meta
		}
		return out
	}
}

// renderMeta renders the confidence meter, source list, and rated badge
// under an agent answer.
func (m *Model) renderMeta(msg *model.Message) string {
	var lines []string

	if msg.Confidence != nil {
		score := *msg.Confidence
		bar := styles.RenderConfidenceBar(score, confidenceBarWidth)
		pct := fmt.Sprintf("%d%%", int(score*100+0.5))
		lines = append(lines, m.theme.MetaLine.Render("confidence ")+
			m.theme.ConfidenceStyle(score).Render(bar+" "+pct))
	}

	for _, src := range msg.Sources {
		lines = append(lines, m.theme.SourceItem.Render("- "+src))
	}

	if msg.Rated {
		lines = append(lines, m.theme.MetaLine.Render("")+
			m.theme.RatedBadge.Render(styles.StatusIndicators.Success+" rated"))
	}

	return strings.Join(lines, "\n")
}

// =============================================================================
// TYPING INDICATOR AND COMPOSER
// =============================================================================

func (m Model) renderTypingLine() string {
	switch {
	case m.state == StateBootstrapping:
		return " " + m.spinner.View() + m.theme.TypingText.Render(" connecting to support...")
	case m.conversation.Pending():
		return " " + m.spinner.View() + m.theme.TypingText.Render(" agent is typing")
	case m.feedback.State() == action.FlowSubmitting,
		m.escalation.State() == action.FlowSubmitting:
		return " " + m.spinner.View() + m.theme.SubmittingText.Render(" submitting...")
	default:
		return ""
	}
}

func (m Model) renderComposer() string {
	if m.state == StateFailed {
		return m.theme.InputContainer.Width(m.width - 2).
			Render(m.theme.StatusError.Render("Backend unavailable. Press C-n to retry or C-c to quit."))
	}
	return m.theme.InputContainer.Width(m.width - 2).Render(m.input.View())
}

// =============================================================================
// STATUS BAR
// =============================================================================

func (m Model) renderStatusBar() string {
	if m.statusMsg != "" {
		style := m.theme.StatusNotice
		if m.statusErr {
			style = m.theme.StatusError
		}
		return m.theme.StatusBar.Width(m.width).Render(style.Render(m.statusMsg))
	}

	var parts []string
	for _, b := range m.keyMap.ShortHelp() {
		h := b.Help()
		parts = append(parts,
			m.theme.ShortcutKey.Render(h.Key)+" "+m.theme.ShortcutDesc.Render(h.Desc))
	}
	return m.theme.StatusBar.Width(m.width).Render(strings.Join(parts, "  "))
}

// =============================================================================
// FEEDBACK MODAL
// =============================================================================

func (m Model) renderFeedbackModal() string {
	var b strings.Builder

	b.WriteString(m.theme.ModalTitle.Render("Rate this answer"))
	b.WriteString("\n")
	if target := m.feedback.Target(); target != nil {
		b.WriteString(m.theme.ModalHint.Render(target.Preview(48)))
		b.WriteString("\n\n")
	}

	stars := styles.RenderStars(m.feedback.Rating(), 5)
	starStyle := m.theme.StarInactive
	if m.feedback.Rating() > 0 {
		starStyle = m.theme.StarActive
	}
	row := starStyle.Render(stars)
	if !m.commentFocused {
		row = m.theme.HeaderTitle.Render(focusMarker) + row
	} else {
		row = "  " + row
	}
	b.WriteString(row)
	b.WriteString("\n\n")
	b.WriteString(m.commentInput.View())
	b.WriteString("\n\n")

	if m.feedback.State() == action.FlowSubmitting {
		b.WriteString(m.theme.SubmittingText.Render("Submitting..."))
	} else {
		b.WriteString(m.theme.ModalHint.Render("1-5 rate · Tab comment · Enter submit · Esc cancel"))
	}

	return m.theme.ModalBox.Width(m.width - 4).Render(b.String())
}

// =============================================================================
// ESCALATION MODAL
// =============================================================================

func (m Model) renderEscalationModal() string {
	if m.escalation.State() == action.FlowResolved {
		return m.renderTicket()
	}

	var b strings.Builder
	b.WriteString(m.theme.ModalTitle.Render("Escalate to a human"))
	b.WriteString("\n")
	if target := m.escalation.Target(); target != nil {
		b.WriteString(m.theme.ModalHint.Render(target.Preview(48)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.theme.OptionLabel.Render("Reason"))
	b.WriteString(m.theme.OptionValue.Render(m.escalation.Reason().Label()))
	b.WriteString("\n")
	b.WriteString(m.theme.OptionLabel.Render("Severity"))
	b.WriteString(m.theme.OptionValue.Render(string(m.escalation.Severity())))
	b.WriteString("\n\n")

	if m.escalation.State() == action.FlowSubmitting {
		b.WriteString(m.theme.SubmittingText.Render("Submitting..."))
	} else {
		b.WriteString(m.theme.ModalHint.Render("r reason · s severity · Enter submit · Esc cancel"))
	}

	return m.theme.ModalBox.Width(m.width - 4).Render(b.String())
}

func (m Model) renderTicket() string {
	ticket := m.escalation.Ticket()
	if ticket == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.ModalTitle.Render("Ticket created"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.TicketLabel.Render("Reference"))
	b.WriteString(m.theme.TicketValue.Render(ticket.TicketRef))
	b.WriteString("\n")
	b.WriteString(m.theme.TicketLabel.Render("Status"))
	b.WriteString(m.theme.TicketValue.Render(ticket.Status))
	b.WriteString("\n")
	b.WriteString(m.theme.TicketLabel.Render("Response time"))
	b.WriteString(m.theme.TicketValue.Render(ticket.EstimatedResponseTime))
	b.WriteString("\n\n")
	b.WriteString(m.theme.ModalHint.Render("Esc close"))

	return m.theme.TicketBox.Width(m.width - 4).Render(b.String())
}
