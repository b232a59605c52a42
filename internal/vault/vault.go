// Package vault implements the per-user credential store. A Vault owns the
// in-memory collection for one authenticated account and re-persists it in
// full after every mutation; there is no partial or append persistence.
package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/lockbox/internal/common"
	"github.com/dmitrijs2005/lockbox/internal/icons"
	"github.com/dmitrijs2005/lockbox/internal/logging"
	"github.com/dmitrijs2005/lockbox/internal/models"
	"github.com/dmitrijs2005/lockbox/internal/storage"
)

// Vault is the credential collection of exactly one account. It is not safe
// for concurrent use; all operations run on the single interactive loop.
type Vault struct {
	store       storage.Store
	accountID   int64
	log         logging.Logger
	credentials []models.Credential
}

// Open loads the persisted collection for the account. An absent collection
// starts empty; with seedDemo set it is seeded with example entries and
// persisted, matching the historical first-login behavior.
func Open(ctx context.Context, store storage.Store, accountID int64, seedDemo bool, log logging.Logger) (*Vault, error) {
	v := &Vault{store: store, accountID: accountID, log: log}

	raw, ok, err := store.Get(ctx, v.key())
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}
	if !ok {
		if seedDemo {
			v.credentials = demoCredentials(time.Now())
			if err := v.persist(ctx); err != nil {
				return nil, err
			}
			log.Info(ctx, "seeded demo credentials", "account_id", accountID)
		} else {
			v.credentials = []models.Credential{}
		}
		return v, nil
	}

	if err := json.Unmarshal([]byte(raw), &v.credentials); err != nil {
		return nil, fmt.Errorf("%w: credentials: %v", common.ErrStorageCorrupt, err)
	}
	return v, nil
}

func (v *Vault) key() string {
	return storage.CredentialKeyPrefix + strconv.FormatInt(v.accountID, 10)
}

func (v *Vault) persist(ctx context.Context) error {
	data, err := json.Marshal(v.credentials)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := v.store.Set(ctx, v.key(), string(data)); err != nil {
		return fmt.Errorf("failed to persist credentials: %w", err)
	}
	return nil
}

// Credentials returns the collection in insertion order. The slice is a copy;
// records are mutated only through the Vault methods.
func (v *Vault) Credentials() []models.Credential {
	out := make([]models.Credential, len(v.credentials))
	copy(out, v.credentials)
	return out
}

// Get returns the credential with the given id, or common.ErrNotFound.
func (v *Vault) Get(id int64) (*models.Credential, error) {
	for i := range v.credentials {
		if v.credentials[i].ID == id {
			c := v.credentials[i]
			return &c, nil
		}
	}
	return nil, common.ErrNotFound
}

// Create appends a new credential with a fresh id, favorite unset and an
// icon derived from the website, then persists the whole collection.
func (v *Vault) Create(ctx context.Context, fields models.CredentialFields) (*models.Credential, error) {
	c := models.Credential{
		ID:          v.nextID(time.Now()),
		Website:     fields.Website,
		AccountName: fields.AccountName,
		Username:    fields.Username,
		Password:    fields.Password,
		Category:    normalizeCategory(fields.Category),
		Notes:       fields.Notes,
		Favorite:    false,
		Icon:        icons.ForWebsite(fields.Website),
	}

	v.credentials = append(v.credentials, c)
	if err := v.persist(ctx); err != nil {
		return nil, err
	}
	v.log.Debug(ctx, "credential created", "id", c.ID)
	return &c, nil
}

// Update replaces all mutable fields of the credential with the given id,
// preserving its id and favorite flag, and recomputes the icon from the
// submitted website.
func (v *Vault) Update(ctx context.Context, id int64, fields models.CredentialFields) error {
	for i := range v.credentials {
		if v.credentials[i].ID != id {
			continue
		}
		c := &v.credentials[i]
		c.Website = fields.Website
		c.AccountName = fields.AccountName
		c.Username = fields.Username
		c.Password = fields.Password
		c.Category = normalizeCategory(fields.Category)
		c.Notes = fields.Notes
		c.Icon = icons.ForWebsite(fields.Website)
		return v.persist(ctx)
	}
	return common.ErrNotFound
}

// Delete removes the credential with the given id.
func (v *Vault) Delete(ctx context.Context, id int64) error {
	for i := range v.credentials {
		if v.credentials[i].ID != id {
			continue
		}
		v.credentials = append(v.credentials[:i], v.credentials[i+1:]...)
		return v.persist(ctx)
	}
	return common.ErrNotFound
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (v *Vault) ToggleFavorite(ctx context.Context, id int64) (bool, error) {
	for i := range v.credentials {
		if v.credentials[i].ID != id {
			continue
		}
		v.credentials[i].Favorite = !v.credentials[i].Favorite
		if err := v.persist(ctx); err != nil {
			return false, err
		}
		return v.credentials[i].Favorite, nil
	}
	return false, common.ErrNotFound
}

// Clear drops the in-memory collection. Called on logout so no credential
// state remains accessible.
func (v *Vault) Clear() {
	v.credentials = nil
}

// nextID derives a credential id from the creation timestamp, bumped past
// any id already present in the collection.
func (v *Vault) nextID(now time.Time) int64 {
	taken := make(map[int64]struct{}, len(v.credentials))
	for _, c := range v.credentials {
		taken[c.ID] = struct{}{}
	}
	id := now.UnixMilli()
	for {
		if _, ok := taken[id]; !ok {
			return id
		}
		id++
	}
}

// normalizeCategory maps anything outside the stored enumeration to "other";
// "all" and "favorites" are view filters and are never stored.
func normalizeCategory(c models.Category) models.Category {
	if c.Valid() {
		return c
	}
	return models.CategoryOther
}
