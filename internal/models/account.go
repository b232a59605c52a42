// Package models defines the persisted record types of Lockbox: accounts,
// sessions and credentials. JSON field names are part of the storage format
// and must stay stable.
package models

import "time"

// Account is a user directory entry. Email is stored lower-cased and is
// unique case-insensitively across the directory. PasswordHash is the output
// of the configured master-password hash scheme; with the legacy scheme it is
// NOT a secure hash.
type Account struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
