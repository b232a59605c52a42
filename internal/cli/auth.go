package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/lockbox/internal/common"
	"github.com/dmitrijs2005/lockbox/internal/models"
)

// Register creates a new vault account and logs straight into it, mirroring
// the auto-login after registration the app has always had.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		printlnFn("Please enter your name")
		return nil
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter master password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if len(password) < 6 {
		printlnFn("Password must be at least 6 characters long")
		return nil
	}

	confirm, err := GetPassword("Confirm master password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		printlnFn("Passwords do not match")
		return nil
	}

	account, err := a.directory.Register(ctx, name, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			printlnFn("This email is already registered. Please login instead.")
			return nil
		}
		a.log.Error(ctx, "registration failed", "error", err)
		return err
	}

	if err := a.finishLogin(ctx, account); err != nil {
		return err
	}
	printlnFn("Vault created successfully! Welcome, " + account.Name)
	return nil
}

// Login authenticates against the directory and unlocks the vault.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter master password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account, err := a.directory.Login(ctx, email, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNoSuchAccount):
			printlnFn("No vault found with this email. Please create a new vault.")
		case errors.Is(err, common.ErrBadPassword):
			printlnFn("Incorrect password. Please try again.")
		default:
			a.log.Error(ctx, "login failed", "error", err)
			printlnFn("Login failed: " + err.Error())
		}
		return err
	}

	if err := a.finishLogin(ctx, account); err != nil {
		return err
	}
	printlnFn("Welcome back, " + account.Name + "!")
	return nil
}

// finishLogin persists the session pointer and loads the account's vault.
func (a *App) finishLogin(ctx context.Context, account *models.Account) error {
	if err := a.sessions.Start(ctx, account); err != nil {
		a.log.Error(ctx, "failed to start session", "error", err)
		return err
	}
	if err := a.unlock(ctx, account); err != nil {
		a.log.Error(ctx, "failed to open vault", "error", err)
		return err
	}
	return nil
}

// Logout ends the session and drops all in-memory credential state.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in")
		return nil
	}
	if err := a.sessions.End(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.lock()
	printlnFn("Vault locked")
	return nil
}

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return fmt.Errorf("not logged in")
	}
	return nil
}
