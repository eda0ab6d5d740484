// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the typed HTTP client for the support-agent backend.
package api

import (
	"errors"
	"fmt"
)

// Causes carried inside a TransportError. The core never branches on these;
// they exist for logging and tests.
var (
	// ErrNetwork indicates the request never produced an HTTP response.
	ErrNetwork = errors.New("network failure")

	// ErrStatus indicates the backend answered with a non-2xx status.
	ErrStatus = errors.New("unexpected status")

	// ErrMalformedBody indicates the response body could not be decoded.
	ErrMalformedBody = errors.New("malformed response body")
)

// TransportError is the single failure shape for every backend operation.
// Domain code treats it as opaque: a call either succeeded or it did not.
type TransportError struct {
	Op     string // operation name, e.g. "send_message"
	Status int    // HTTP status, 0 when no response was received
	Err    error  // underlying cause
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api: %s failed (HTTP %d): %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("api: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
