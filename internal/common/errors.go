// Package common contains shared helpers and sentinel errors used across
// the BlogNest client. Callers should use errors.Is to match the sentinel
// values.
package common

import "errors"

var (
	// ErrNotFound reports that a requested blog or post does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized reports a missing, expired, or rejected credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAuthRequired is returned by the route guard when an
	// unauthenticated caller reaches a credential-gated surface.
	ErrAuthRequired = errors.New("authentication required")
)
