// Copyright 2026 The asynchttp Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cli

import "github.com/gogama/asynchttp/failure"

// Exit codes for the asynchttp command
const (
	// ExitSuccess indicates the request completed
	ExitSuccess = 0

	// ExitHTTPError indicates a 4XX or 5XX status with --fail
	ExitHTTPError = 1

	// ExitFailure indicates a generic request failure
	ExitFailure = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitConnectionError indicates the server could not be reached
	ExitConnectionError = 4

	// ExitTimeoutError indicates the request timed out
	ExitTimeoutError = 5

	// ExitInvalidRequest indicates the request was malformed
	ExitInvalidRequest = 6

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return "exit status"
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func exit(code int, err error) error {
	return &exitError{code: code, err: err}
}

func exitCodeOf(err error) int {
	switch failure.KindOf(err) {
	case failure.Connection:
		return ExitConnectionError
	case failure.Timeout:
		return ExitTimeoutError
	case failure.Invalid:
		return ExitInvalidRequest
	default:
		return ExitFailure
	}
}
