// Package session persists and resumes the login session pointer.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lockbox/internal/common"
	"github.com/dmitrijs2005/lockbox/internal/logging"
	"github.com/dmitrijs2005/lockbox/internal/models"
	"github.com/dmitrijs2005/lockbox/internal/storage"
	"github.com/dmitrijs2005/lockbox/internal/users"
)

// Manager reads and writes the persisted session pointer. A pointer is only
// honored while both its user id and email still match a directory entry;
// anything stale reads as no session.
type Manager struct {
	store     storage.Store
	directory *users.Directory
	log       logging.Logger
}

func NewManager(store storage.Store, directory *users.Directory, log logging.Logger) *Manager {
	return &Manager{store: store, directory: directory, log: log}
}

// Resume returns the account referenced by the persisted pointer, or
// common.ErrNoSession when there is no usable session.
func (m *Manager) Resume(ctx context.Context) (*models.Account, error) {
	raw, ok, err := m.store.Get(ctx, storage.KeySession)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !ok {
		return nil, common.ErrNoSession
	}

	var s models.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("%w: session: %v", common.ErrStorageCorrupt, err)
	}

	account, err := m.directory.FindByEmail(ctx, s.Email)
	if err != nil {
		if errors.Is(err, common.ErrNoSuchAccount) {
			m.log.Debug(ctx, "stale session, account gone", "email", s.Email)
			return nil, common.ErrNoSession
		}
		return nil, err
	}
	if account.ID != s.UserID {
		m.log.Debug(ctx, "stale session, id mismatch", "email", s.Email)
		return nil, common.ErrNoSession
	}
	return account, nil
}

// Start persists a pointer to the given account.
func (m *Manager) Start(ctx context.Context, account *models.Account) error {
	data, err := json.Marshal(models.Session{UserID: account.ID, Email: account.Email})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := m.store.Set(ctx, storage.KeySession, string(data)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// End removes the persisted pointer. Callers must also drop any in-memory
// credential state; nothing may remain accessible after logout.
func (m *Manager) End(ctx context.Context) error {
	if err := m.store.Delete(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
