// Package common defines shared constants and sentinel errors used across
// the blogview client core. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrorNotFound = errors.New("not found")

	// Session errors.
	ErrorNoSession   = errors.New("no active session")
	ErrMirrorExpired = errors.New("session mirror expired")

	// Generic/internal flow control.
	ErrorInternal = errors.New("internal error")
)
