// Package storage defines the persistence boundary of Lockbox: a synchronous,
// string-keyed, string-valued store, plus the drivers backing it.
//
// The key layout is fixed:
//
//	vaultUsers            — serialized array of account records
//	currentSession        — serialized session pointer, or absent
//	passwords_{accountId} — serialized array of credential records
//
// Higher layers always read-modify-write whole values; partial updates are
// never performed.
package storage

import "context"

// Key constants for the fixed storage layout.
const (
	KeyUsers   = "vaultUsers"
	KeySession = "currentSession"

	// CredentialKeyPrefix prefixes the owning account id.
	CredentialKeyPrefix = "passwords_"
)

// Store is a synchronous string key-value store.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any prior value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
