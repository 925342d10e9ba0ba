// Package common defines the sentinel errors shared by the storage, content,
// session and mail layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// A persisted blob could not be decoded.
	ErrDeserialization = errors.New("deserialization failure")

	// Auth errors.
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrSessionExpiredOrMissing = errors.New("session expired or missing")

	// Outbound calls (mail delivery).
	ErrNetworkFailure = errors.New("network failure")
)
