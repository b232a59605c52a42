// Package users implements the user directory: registration, login and
// lookups over the persisted account list.
package users

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/lockbox/internal/common"
	"github.com/dmitrijs2005/lockbox/internal/logging"
	"github.com/dmitrijs2005/lockbox/internal/models"
	"github.com/dmitrijs2005/lockbox/internal/storage"
)

// Directory provides authentication operations over a storage.Store. The
// whole account list is read and re-persisted on every mutation.
type Directory struct {
	store  storage.Store
	scheme string
	log    logging.Logger
}

func NewDirectory(store storage.Store, scheme string, log logging.Logger) *Directory {
	return &Directory{store: store, scheme: scheme, log: log}
}

func (d *Directory) loadAccounts(ctx context.Context) ([]models.Account, error) {
	raw, ok, err := d.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to read user directory: %w", err)
	}
	if !ok {
		return []models.Account{}, nil
	}
	var accounts []models.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, fmt.Errorf("%w: user directory: %v", common.ErrStorageCorrupt, err)
	}
	return accounts, nil
}

func (d *Directory) saveAccounts(ctx context.Context, accounts []models.Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode user directory: %w", err)
	}
	if err := d.store.Set(ctx, storage.KeyUsers, string(data)); err != nil {
		return fmt.Errorf("failed to persist user directory: %w", err)
	}
	return nil
}

// FindByEmail returns the account matching email case-insensitively, or
// common.ErrNoSuchAccount.
func (d *Directory) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	accounts, err := d.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(email)
	for i := range accounts {
		if strings.ToLower(accounts[i].Email) == lower {
			return &accounts[i], nil
		}
	}
	return nil, common.ErrNoSuchAccount
}

// Register creates a new account. The email is stored lower-cased; a
// case-insensitive collision yields common.ErrDuplicateEmail and leaves the
// directory unchanged.
func (d *Directory) Register(ctx context.Context, name, email, password string) (*models.Account, error) {
	accounts, err := d.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(email)
	for _, a := range accounts {
		if strings.ToLower(a.Email) == lower {
			return nil, common.ErrDuplicateEmail
		}
	}

	hash, err := hashPassword(d.scheme, password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := models.Account{
		ID:           nextAccountID(accounts, now),
		Name:         name,
		Email:        lower,
		PasswordHash: hash,
		CreatedAt:    now,
	}

	accounts = append(accounts, account)
	if err := d.saveAccounts(ctx, accounts); err != nil {
		return nil, err
	}

	d.log.Info(ctx, "account registered", "email", account.Email, "scheme", d.scheme)
	return &account, nil
}

// Login verifies the password for the account matching email. Any number of
// attempts is permitted; there is no lockout.
func (d *Directory) Login(ctx context.Context, email, password string) (*models.Account, error) {
	account, err := d.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !verifyPassword(account.PasswordHash, password) {
		return nil, common.ErrBadPassword
	}
	d.log.Debug(ctx, "login ok", "email", account.Email)
	return account, nil
}

// nextAccountID derives an id from the creation timestamp, bumped past any
// id already taken so fast successive registrations stay unique.
func nextAccountID(accounts []models.Account, now time.Time) int64 {
	taken := make(map[int64]struct{}, len(accounts))
	for _, a := range accounts {
		taken[a.ID] = struct{}{}
	}
	id := now.UnixMilli()
	for {
		if _, ok := taken[id]; !ok {
			return id
		}
		id++
	}
}
