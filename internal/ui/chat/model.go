// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the helpdesk TUI.
package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/helpdesk-tui/internal/action"
	"github.com/jeranaias/helpdesk-tui/internal/api"
	"github.com/jeranaias/helpdesk-tui/internal/model"
	"github.com/jeranaias/helpdesk-tui/internal/session"
	"github.com/jeranaias/helpdesk-tui/internal/store"
	"github.com/jeranaias/helpdesk-tui/internal/ui/styles"
)

// =============================================================================
// STATE DEFINITIONS
// =============================================================================

// State is the top-level screen state.
type State int

const (
	// StateBootstrapping - session restore/create is still in flight
	StateBootstrapping State = iota
	// StateReady - session established, composer enabled
	StateReady
	// StateFailed - bootstrap failed, composer disabled
	StateFailed
)

// modal identifies the active overlay. At most one modal is open at a time.
type modal int

const (
	modalNone modal = iota
	modalFeedback
	modalEscalation
)

// Composer limits.
const (
	inputCharLimit   = 4096
	commentCharLimit = 512
)

// =============================================================================
// MODEL DEFINITION
// =============================================================================

// Model is the Bubble Tea model for the chat screen.
type Model struct {
	// State
	state State
	modal modal

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Conversation and collaborators
	conversation *model.Conversation
	controller   *session.Controller
	client       *api.Client
	store        *store.Store

	// Action flows
	feedback       *action.FeedbackFlow
	escalation     *action.EscalationFlow
	commentFocused bool // feedback modal: comment field vs star row

	// Focused actionable message (empty when none)
	focusLocal string

	// UI Components
	viewport     viewport.Model
	input        textinput.Model
	commentInput textinput.Model
	spinner      spinner.Model

	// Key bindings
	keyMap KeyMap

	// Markdown rendering for agent answers
	renderer *glamour.TermRenderer

	// Transient status line
	statusMsg string
	statusErr bool
	statusSeq int
}

// New creates the chat model. The controller, client, and store are shared
// with main; the model never closes them.
func New(theme *styles.Theme, ctrl *session.Controller, client *api.Client, st *store.Store) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type your question..."
	ti.CharLimit = inputCharLimit
	ti.Focus()

	ci := textinput.New()
	ci.Prompt = "Comment: "
	ci.Placeholder = "optional"
	ci.CharLimit = commentCharLimit

	vp := viewport.New(80, 20)
	vp.SetContent("")

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: styles.TypingSpinner.Frames,
		FPS:    styles.TypingSpinner.Duration(),
	}
	sp.Style = theme.Spinner

	return Model{
		state:        StateBootstrapping,
		modal:        modalNone,
		theme:        theme,
		conversation: model.NewConversation(),
		controller:   ctrl,
		client:       client,
		store:        st,
		feedback:     action.NewFeedbackFlow(),
		escalation:   action.NewEscalationFlow(),
		viewport:     vp,
		input:        ti,
		commentInput: ci,
		spinner:      sp,
		keyMap:       DefaultKeyMap(),
		renderer:     newMarkdownRenderer(theme.Variant, 76),
	}
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blink, the spinner, and the session bootstrap.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		BootstrapCmd(m.controller),
	)
}

// =============================================================================
// ACCESSORS
// =============================================================================

// State returns the top-level screen state.
func (m Model) State() State { return m.state }

// Conversation returns the transcript.
func (m Model) Conversation() *model.Conversation { return m.conversation }

// Theme returns the active theme.
func (m Model) Theme() *styles.Theme { return m.theme }

// FocusedMessage returns the actionable message actions apply to, or nil.
func (m Model) FocusedMessage() *model.Message {
	if m.focusLocal == "" {
		return nil
	}
	return m.conversation.ByLocalID(m.focusLocal)
}

// =============================================================================
// INTERNAL HELPERS
// =============================================================================

// setStatus replaces the transient status line and arms its expiry timer.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusMsg = text
	m.statusErr = isErr
	m.statusSeq++
	return clearStatusCmd(m.statusSeq)
}

// setTheme swaps the palette, persists the choice, and rebuilds everything
// derived from it. Persistence failure is not fatal; the toggle still
// applies for this run.
func (m *Model) setTheme(variant styles.Variant) {
	m.theme = styles.NewTheme(variant)
	m.spinner.Style = m.theme.Spinner
	m.renderer = newMarkdownRenderer(variant, m.wrapWidth())
	if m.store != nil {
		_ = m.store.SetTheme(variant.String())
	}
}

// actionables returns the local ids of every message actions apply to, in
// transcript order.
func (m *Model) actionables() []string {
	var ids []string
	for _, msg := range m.conversation.Messages() {
		if msg.Actionable() {
			ids = append(ids, msg.LocalID)
		}
	}
	return ids
}

// moveFocus shifts the focused actionable message by delta, clamped to the
// transcript ends.
func (m *Model) moveFocus(delta int) {
	ids := m.actionables()
	if len(ids) == 0 {
		m.focusLocal = ""
		return
	}

	cur := -1
	for i, id := range ids {
		if id == m.focusLocal {
			cur = i
			break
		}
	}
	if cur == -1 {
		// No current focus: start from the newest answer.
		cur = len(ids) - 1
	} else {
		cur += delta
		if cur < 0 {
			cur = 0
		}
		if cur >= len(ids) {
			cur = len(ids) - 1
		}
	}
	m.focusLocal = ids[cur]
}

// focusNewest points the focus at the most recent actionable message.
func (m *Model) focusNewest() {
	ids := m.actionables()
	if len(ids) == 0 {
		m.focusLocal = ""
		return
	}
	m.focusLocal = ids[len(ids)-1]
}

// wrapWidth is the word-wrap width for rendered markdown.
func (m *Model) wrapWidth() int {
	w := m.width - 12
	if w < 20 {
		w = 76
	}
	return w
}

// busy reports whether a backend call is in flight.
func (m *Model) busy() bool {
	return m.state == StateBootstrapping ||
		m.conversation.Pending() ||
		m.feedback.State() == action.FlowSubmitting ||
		m.escalation.State() == action.FlowSubmitting
}

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// newMarkdownRenderer builds a glamour renderer matching the theme variant.
// Returns nil when construction fails; callers fall back to plain text.
func newMarkdownRenderer(variant styles.Variant, wrap int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(variant.String()),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil
	}
	return r
}

// renderMarkdown renders agent answer markdown for terminal display.
// Returns the original content if rendering fails.
func (m *Model) renderMarkdown(content string) string {
	if m.renderer == nil {
		return content
	}
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}

// relativeTime formats a timestamp for the transcript margin.
func relativeTime(t time.Time) string {
	return t.Local().Format("15:04")
}
