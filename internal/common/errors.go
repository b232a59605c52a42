// Package common defines shared sentinel errors used across the Lockbox core
// and the CLI. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Directory errors.
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNoSuchAccount  = errors.New("no account with this email")
	ErrBadPassword    = errors.New("incorrect password")

	// Credential store errors.
	ErrNotFound = errors.New("not found")

	// Session errors.
	ErrNoSession = errors.New("no session")

	// Generator errors.
	ErrNoCharacterClass = errors.New("no character class selected")

	// Clipboard errors.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")

	// Storage errors. A blob that cannot be decoded is a hard stop: the
	// caller has to re-authenticate or reset the store.
	ErrStorageCorrupt = errors.New("storage corrupt")
)
