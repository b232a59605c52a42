package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/lockbox/internal/common"
	"github.com/dmitrijs2005/lockbox/internal/models"
	"github.com/dmitrijs2005/lockbox/internal/strength"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		printlnFn("Invalid id:", arg)
		return 0, err
	}
	return id, nil
}

// inputFields collects the credential form. Defaults (from the record being
// edited) are shown in the prompt and kept when the user enters nothing.
func (a *App) inputFields(defaults models.CredentialFields) (models.CredentialFields, error) {
	prompt := func(label, current string) (string, error) {
		p := label
		if current != "" {
			p = fmt.Sprintf("%s [%s]", label, current)
		}
		v, err := GetSimpleText(a.reader, p, os.Stdout)
		if err != nil {
			return "", err
		}
		if v == "" {
			return current, nil
		}
		return v, nil
	}

	var f models.CredentialFields
	var err error

	if f.Website, err = prompt("Enter website URL", defaults.Website); err != nil {
		return f, err
	}
	if f.AccountName, err = prompt("Enter account name", defaults.AccountName); err != nil {
		return f, err
	}
	if f.Username, err = prompt("Enter username", defaults.Username); err != nil {
		return f, err
	}
	if f.Password, err = prompt("Enter password (or leave empty to keep)", defaults.Password); err != nil {
		return f, err
	}

	s := strength.Score(f.Password)
	printlnFn(fmt.Sprintf("Strength: %s (%d%%)", s.Label, s.Percentage))

	category, err := prompt("Enter category (banking/social/work/other)", string(defaults.Category))
	if err != nil {
		return f, err
	}
	f.Category = models.Category(category)

	if f.Notes, err = prompt("Enter notes", defaults.Notes); err != nil {
		return f, err
	}
	return f, nil
}

// Add collects fields for a new credential and appends it to the vault.
func (a *App) Add(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	fields, err := a.inputFields(models.CredentialFields{})
	if err != nil {
		return err
	}
	if fields.AccountName == "" || fields.Username == "" {
		printlnFn("Account name and username are required")
		return nil
	}

	created, err := a.vault.Create(ctx, fields)
	if err != nil {
		a.log.Error(ctx, "create failed", "error", err)
		return err
	}
	printlnFn(fmt.Sprintf("Password added successfully (id %d)", created.ID))
	return nil
}

// Edit replaces all fields of an existing credential.
func (a *App) Edit(ctx context.Context, arg string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	current, err := a.vault.Get(id)
	if err != nil {
		printlnFn("Password not found")
		return err
	}

	fields, err := a.inputFields(models.CredentialFields{
		Website:     current.Website,
		AccountName: current.AccountName,
		Username:    current.Username,
		Password:    current.Password,
		Category:    current.Category,
		Notes:       current.Notes,
	})
	if err != nil {
		return err
	}

	if err := a.vault.Update(ctx, id, fields); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Password not found")
		}
		return err
	}
	printlnFn("Password updated successfully")
	return nil
}

// Delete removes a credential after confirmation.
func (a *App) Delete(ctx context.Context, arg string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	answer, err := GetSimpleText(a.reader, "Delete this password? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "yes" {
		return nil
	}

	if err := a.vault.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Password not found")
		}
		return err
	}
	printlnFn("Password deleted successfully")
	return nil
}

// Favorite toggles the favorite flag.
func (a *App) Favorite(ctx context.Context, arg string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	on, err := a.vault.ToggleFavorite(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Password not found")
		}
		return err
	}
	if on {
		printlnFn("Added to favorites")
	} else {
		printlnFn("Removed from favorites")
	}
	return nil
}

// Show prints a single credential in full, including the password.
func (a *App) Show(ctx context.Context, arg string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	c, err := a.vault.Get(id)
	if err != nil {
		printlnFn("Password not found")
		return err
	}

	printlnFn(fmt.Sprintf("%s %s", c.Icon, sanitizeText(c.AccountName)))
	printlnFn("  Website:  " + sanitizeText(c.Website))
	printlnFn("  Username: " + sanitizeText(c.Username))
	printlnFn("  Password: " + sanitizeText(c.Password))
	printlnFn("  Category: " + string(c.Category))
	if c.Notes != "" {
		printlnFn("  Notes:    " + sanitizeText(c.Notes))
	}
	if c.Favorite {
		printlnFn("  Favorite")
	}
	return nil
}

// Copy puts a credential's password on the clipboard and schedules the
// configured wipe.
func (a *App) Copy(ctx context.Context, arg string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	c, err := a.vault.Get(id)
	if err != nil {
		printlnFn("Password not found")
		return err
	}

	if err := a.clip.Write(c.Password); err != nil {
		printlnFn("Failed to copy")
		a.log.Warn(ctx, "clipboard write failed", "error", err)
		return err
	}
	a.scheduleClipboardClear()
	printlnFn("Password copied to clipboard")
	return nil
}
