// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the typed HTTP client for the support-agent backend.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Configuration constants for the backend client.
const (
	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the client to the backend.
	DefaultUserAgent = "helpdesk-tui/0.1.0"

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion.
	MaxResponseSize = 4 * 1024 * 1024 // 4MB limit

	// defaultRequestsPerSec is the client-side politeness limit applied to
	// all backend calls. The pending/rated guards upstream already serialize
	// most traffic; the limiter bounds pathological key-repeat bursts.
	defaultRequestsPerSec = 5
)

// PERFORMANCE: Connection pooling reduces TCP handshake overhead.
// Shared HTTP client for all backend requests.
var sharedHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	},
	Timeout: DefaultTimeout,
}

// Client communicates with the support-agent backend.
//
// All five operations fail with *TransportError; callers never see raw HTTP
// details. The zero value is not usable; construct with NewClient.
type Client struct {
	baseURL    string
	userID     string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		userAgent:  DefaultUserAgent,
		timeout:    DefaultTimeout,
		httpClient: sharedHTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(defaultRequestsPerSec), defaultRequestsPerSec),
	}
}

// WithUserID sets the optional user id sent on session creation.
func (c *Client) WithUserID(id string) *Client {
	c.userID = strings.TrimSpace(id)
	return c
}

// WithTimeout sets the per-request timeout.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.timeout = timeout
	return c
}

// WithUserAgent sets the User-Agent header.
func (c *Client) WithUserAgent(ua string) *Client {
	c.userAgent = ua
	return c
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// OPERATIONS
// =============================================================================

// CreateSession creates a new backend session and returns its id.
func (c *Client) CreateSession(ctx context.Context) (string, error) {
	var resp createSessionResponse
	req := createSessionRequest{UserID: c.userID}
	if err := c.do(ctx, "create_session", http.MethodPost, "/session", req, &resp); err != nil {
		return "", err
	}
	if resp.SessionID == "" {
		return "", &TransportError{Op: "create_session", Err: fmt.Errorf("%w: empty session_id", ErrMalformedBody)}
	}
	return resp.SessionID, nil
}

// FetchHistory retrieves the stored message sequence for a session, in
// chronological order as returned by the backend.
func (c *Client) FetchHistory(ctx context.Context, sessionID string) ([]HistoryMessage, error) {
	var resp historyResponse
	path := "/session/" + sessionID + "/history"
	if err := c.do(ctx, "fetch_history", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Messages, nil
}

// SendMessage submits one user message and returns the assistant's reply.
// Streaming is always disabled; the client renders complete answers only.
func (c *Client) SendMessage(ctx context.Context, sessionID, message string) (*ChatReply, error) {
	var reply ChatReply
	req := chatRequest{SessionID: sessionID, Message: message, Stream: false}
	if err := c.do(ctx, "send_message", http.MethodPost, "/chat", req, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// SubmitFeedback records a rating (1-5) with an optional comment for one
// message. The backend ack carries no identity the client needs; success is
// the only signal.
func (c *Client) SubmitFeedback(ctx context.Context, sessionID, messageID string, rating int, comment string) error {
	req := feedbackRequest{
		SessionID: sessionID,
		MessageID: messageID,
		Rating:    rating,
		Comment:   comment,
	}
	return c.do(ctx, "submit_feedback", http.MethodPost, "/feedback", req, nil)
}

// SubmitEscalation opens a support ticket for one message and returns it.
func (c *Client) SubmitEscalation(ctx context.Context, sessionID, messageID, reason, severity string) (*Ticket, error) {
	var ticket Ticket
	req := escalateRequest{
		SessionID: sessionID,
		MessageID: messageID,
		Reason:    reason,
		Severity:  severity,
	}
	if err := c.do(ctx, "submit_escalation", http.MethodPost, "/escalate", req, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// do performs one request/response cycle and maps every failure mode onto
// *TransportError. When out is nil the response body is drained and the
// status alone decides success.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("failed to marshal request: %w", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.logRequest(req)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()
	c.logResponse(resp, time.Since(start))

	data, err := readResponse(resp)
	if err != nil {
		return &TransportError{Op: op, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{
			Op:     op,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode),
		}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &TransportError{
				Op:     op,
				Status: resp.StatusCode,
				Err:    fmt.Errorf("%w: %v", ErrMalformedBody, err),
			}
		}
	}
	return nil
}

// readResponse reads the response body with a size limit.
// SECURITY: Response size limit prevents memory exhaustion.
func readResponse(resp *http.Response) ([]byte, error) {
	limited := io.LimitReader(resp.Body, MaxResponseSize)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if int64(len(data)) == MaxResponseSize {
		return nil, fmt.Errorf("%w: response exceeded %d bytes", ErrMalformedBody, MaxResponseSize)
	}
	return data, nil
}

// logRequest logs an API request without bodies or headers.
func (c *Client) logRequest(req *http.Request) {
	log.Printf("API Request: %s %s", req.Method, req.URL.Path)
}

// logResponse logs an API response with duration.
func (c *Client) logResponse(resp *http.Response, duration time.Duration) {
	log.Printf("API Response: %d %s (%v)", resp.StatusCode, resp.Status, duration)
}
