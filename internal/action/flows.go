// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package action contains the per-message feedback and escalation flows.
package action

import (
	"errors"

	"github.com/jeranaias/helpdesk-tui/internal/api"
	"github.com/jeranaias/helpdesk-tui/internal/model"
)

// Validation errors. All are rejected locally, before any transport call.
var (
	// ErrNoSession indicates no Ready session id is available.
	ErrNoSession = errors.New("no active session")

	// ErrNoMessageID indicates the target message has no backend-assigned id.
	ErrNoMessageID = errors.New("message has no backend id")

	// ErrRatingUnset indicates the rating is 0 (unset) or out of range.
	ErrRatingUnset = errors.New("rating must be between 1 and 5")

	// ErrAlreadyRated indicates the message was already rated once.
	ErrAlreadyRated = errors.New("message already rated")

	// ErrFlowBusy indicates a submission is already in flight on this flow.
	ErrFlowBusy = errors.New("submission already in progress")
)

// =============================================================================
// FLOW STATE
// =============================================================================

// FlowState is the lifecycle state of a per-message flow.
type FlowState int

const (
	FlowIdle FlowState = iota
	FlowSubmitting
	FlowResolved
)

// String returns a human-readable state name.
func (s FlowState) String() string {
	switch s {
	case FlowIdle:
		return "idle"
	case FlowSubmitting:
		return "submitting"
	case FlowResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// =============================================================================
// ENUMERATIONS
// =============================================================================

// Reason is an escalation reason accepted by the backend.
type Reason string

const (
	ReasonBilling   Reason = "billing"
	ReasonTechnical Reason = "technical"
	ReasonAccount   Reason = "account"
	ReasonOther     Reason = "other"
)

// Reasons lists all escalation reasons in display order. The first entry is
// the default, so the form is submittable without edits.
var Reasons = []Reason{ReasonBilling, ReasonTechnical, ReasonAccount, ReasonOther}

// Label returns the display label for the reason.
func (r Reason) Label() string {
	switch r {
	case ReasonBilling:
		return "Billing Issue"
	case ReasonTechnical:
		return "Technical Support"
	case ReasonAccount:
		return "Account Access"
	case ReasonOther:
		return "Other"
	default:
		return string(r)
	}
}

// Severity is an escalation severity accepted by the backend.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Severities lists all severities in display order.
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh}

// DefaultSeverity is the pre-selected severity in the escalation form.
const DefaultSeverity = SeverityMedium

// Quick-rate values used by the one-keystroke thumbs-up on a message.
const (
	QuickRating  = 5
	QuickComment = "Liked via UI"
)

// =============================================================================
// FEEDBACK FLOW
// =============================================================================

// FeedbackRequest carries the validated arguments for one feedback call.
type FeedbackRequest struct {
	SessionID string
	MessageID string
	LocalID   string
	Rating    int
	Comment   string
}

// FeedbackFlow is the modal rating flow for a single message. A flow is
// reused across messages: Close returns it to Idle for the next target.
type FeedbackFlow struct {
	state     FlowState
	sessionID string
	target    *model.Message
	rating    int
	comment   string
}

// NewFeedbackFlow creates an idle feedback flow.
func NewFeedbackFlow() *FeedbackFlow {
	return &FeedbackFlow{state: FlowIdle}
}

// State returns the flow state.
func (f *FeedbackFlow) State() FlowState { return f.state }

// Target returns the message under rating, or nil when idle.
func (f *FeedbackFlow) Target() *model.Message { return f.target }

// Rating returns the currently selected rating (0 = unset).
func (f *FeedbackFlow) Rating() int { return f.rating }

// Comment returns the optional comment text.
func (f *FeedbackFlow) Comment() string { return f.comment }

// Open targets the flow at a message. Preconditions are checked here so an
// unusable flow is never shown: a session must exist, the message must carry
// a backend id, and it must not have been rated before.
func (f *FeedbackFlow) Open(sessionID string, target *model.Message) error {
	if sessionID == "" {
		return ErrNoSession
	}
	if target == nil || !target.Actionable() {
		return ErrNoMessageID
	}
	if target.Rated {
		return ErrAlreadyRated
	}
	f.state = FlowIdle
	f.sessionID = sessionID
	f.target = target
	f.rating = 0
	f.comment = ""
	return nil
}

// SetRating selects a star rating (1-5).
func (f *FeedbackFlow) SetRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrRatingUnset
	}
	f.rating = rating
	return nil
}

// SetComment sets the optional comment.
func (f *FeedbackFlow) SetComment(comment string) {
	f.comment = comment
}

// Submit validates the selection and moves the flow to Submitting, returning
// the request the transport should issue. Rating 0 is "unset", not a vote.
func (f *FeedbackFlow) Submit() (*FeedbackRequest, error) {
	if f.state == FlowSubmitting {
		return nil, ErrFlowBusy
	}
	if f.target == nil {
		return nil, ErrNoMessageID
	}
	// Re-checked at submit time: a quick-rate on the same message may have
	// landed while the modal was open.
	if f.target.Rated {
		return nil, ErrAlreadyRated
	}
	if f.rating < 1 || f.rating > 5 {
		return nil, ErrRatingUnset
	}
	f.state = FlowSubmitting
	return &FeedbackRequest{
		SessionID: f.sessionID,
		MessageID: f.target.MessageID,
		LocalID:   f.target.LocalID,
		Rating:    f.rating,
		Comment:   f.comment,
	}, nil
}

// Resolve completes the submission. Success moves to Resolved (the thanks
// view); failure returns to Idle with no state mutation and no retry.
func (f *FeedbackFlow) Resolve(err error) {
	if err != nil {
		f.state = FlowIdle
		return
	}
	f.state = FlowResolved
}

// Close dismisses the flow and returns it to Idle for reuse.
func (f *FeedbackFlow) Close() {
	f.state = FlowIdle
	f.target = nil
	f.rating = 0
	f.comment = ""
}

// QuickFeedback validates a one-keystroke thumbs-up on a message and returns
// the fixed-rating request it maps to. Same guards as the modal flow.
func QuickFeedback(sessionID string, target *model.Message) (*FeedbackRequest, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}
	if target == nil || !target.Actionable() {
		return nil, ErrNoMessageID
	}
	if target.Rated {
		return nil, ErrAlreadyRated
	}
	return &FeedbackRequest{
		SessionID: sessionID,
		MessageID: target.MessageID,
		LocalID:   target.LocalID,
		Rating:    QuickRating,
		Comment:   QuickComment,
	}, nil
}

// =============================================================================
// ESCALATION FLOW
// =============================================================================

// EscalationRequest carries the validated arguments for one escalation call.
type EscalationRequest struct {
	SessionID string
	MessageID string
	Reason    Reason
	Severity  Severity
}

// EscalationFlow is the modal ticket-creation flow for a single message.
// Resolved holds the backend's ticket until the user closes the view; the
// ticket is never stored beyond that.
type EscalationFlow struct {
	state     FlowState
	sessionID string
	target    *model.Message
	reason    Reason
	severity  Severity
	ticket    *api.Ticket
}

// NewEscalationFlow creates an idle escalation flow.
func NewEscalationFlow() *EscalationFlow {
	return &EscalationFlow{
		state:    FlowIdle,
		reason:   Reasons[0],
		severity: DefaultSeverity,
	}
}

// State returns the flow state.
func (f *EscalationFlow) State() FlowState { return f.state }

// Target returns the message under escalation, or nil when idle.
func (f *EscalationFlow) Target() *model.Message { return f.target }

// Reason returns the selected reason.
func (f *EscalationFlow) Reason() Reason { return f.reason }

// Severity returns the selected severity.
func (f *EscalationFlow) Severity() Severity { return f.severity }

// Ticket returns the resolved ticket, or nil outside Resolved.
func (f *EscalationFlow) Ticket() *api.Ticket { return f.ticket }

// Open targets the flow at a message with defaulted form values, so the form
// is submittable without user edits.
func (f *EscalationFlow) Open(sessionID string, target *model.Message) error {
	if sessionID == "" {
		return ErrNoSession
	}
	if target == nil || !target.Actionable() {
		return ErrNoMessageID
	}
	f.state = FlowIdle
	f.sessionID = sessionID
	f.target = target
	f.reason = Reasons[0]
	f.severity = DefaultSeverity
	f.ticket = nil
	return nil
}

// CycleReason advances the reason selection through the fixed set.
func (f *EscalationFlow) CycleReason() {
	for i, r := range Reasons {
		if r == f.reason {
			f.reason = Reasons[(i+1)%len(Reasons)]
			return
		}
	}
	f.reason = Reasons[0]
}

// CycleSeverity advances the severity selection through the fixed set.
func (f *EscalationFlow) CycleSeverity() {
	for i, s := range Severities {
		if s == f.severity {
			f.severity = Severities[(i+1)%len(Severities)]
			return
		}
	}
	f.severity = DefaultSeverity
}

// Submit moves the flow to Submitting and returns the request to issue.
func (f *EscalationFlow) Submit() (*EscalationRequest, error) {
	if f.state == FlowSubmitting {
		return nil, ErrFlowBusy
	}
	if f.target == nil {
		return nil, ErrNoMessageID
	}
	f.state = FlowSubmitting
	return &EscalationRequest{
		SessionID: f.sessionID,
		MessageID: f.target.MessageID,
		Reason:    f.reason,
		Severity:  f.severity,
	}, nil
}

// Resolve completes the submission. Success moves to the terminal Resolved
// state holding the ticket; failure returns to Idle with no retry.
func (f *EscalationFlow) Resolve(ticket *api.Ticket, err error) {
	if err != nil || ticket == nil {
		f.state = FlowIdle
		f.ticket = nil
		return
	}
	f.state = FlowResolved
	f.ticket = ticket
}

// Close discards any resolved ticket and returns the flow to Idle, ready for
// reuse on a different message.
func (f *EscalationFlow) Close() {
	f.state = FlowIdle
	f.target = nil
	f.ticket = nil
	f.reason = Reasons[0]
	f.severity = DefaultSeverity
}
