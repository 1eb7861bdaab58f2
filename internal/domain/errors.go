package domain

import (
	"errors"
	"fmt"
)

// Error categories. Every failure leaving a public service operation
// wraps exactly one of these, so callers discriminate with errors.Is.
var (
	// ErrMalformedInput covers a single record or row that failed to
	// parse. Batch operations record these as diagnostics and continue.
	ErrMalformedInput = errors.New("malformed input")

	// ErrValidationFailure covers structural invariant violations on the
	// assembled record (wrong team length, order/map mismatch). These
	// reject the whole operation.
	ErrValidationFailure = errors.New("validation failure")

	// ErrResolutionMiss covers a species or sprite that could not be
	// resolved. Never fatal; the renderer shows a placeholder.
	ErrResolutionMiss = errors.New("resolution miss")

	// ErrUpstreamFailure covers network or host errors from a scrape
	// target or the remote metadata index. Not retried.
	ErrUpstreamFailure = errors.New("upstream failure")
)

// Fault is a categorized failure. Status carries the upstream HTTP
// status when the category is ErrUpstreamFailure, zero otherwise.
type Fault struct {
	Category error
	Message  string
	Status   int
}

func (f *Fault) Error() string {
	if f.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d)", f.Category, f.Message, f.Status)
	}
	return fmt.Sprintf("%s: %s", f.Category, f.Message)
}

func (f *Fault) Unwrap() error { return f.Category }

func NewFault(category error, format string, args ...any) *Fault {
	return &Fault{Category: category, Message: fmt.Sprintf(format, args...)}
}

func NewUpstreamFault(status int, format string, args ...any) *Fault {
	return &Fault{Category: ErrUpstreamFailure, Message: fmt.Sprintf(format, args...), Status: status}
}
