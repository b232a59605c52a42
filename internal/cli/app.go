// Package cli implements the interactive terminal client: the stand-in for
// the view/controller layer. It owns all per-login state (current account,
// open vault, active filters); nothing lives in package-level globals.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/lockbox/internal/common"

	"github.com/dmitrijs2005/lockbox/internal/clipboard"
	"github.com/dmitrijs2005/lockbox/internal/config"
	"github.com/dmitrijs2005/lockbox/internal/generator"
	"github.com/dmitrijs2005/lockbox/internal/logging"
	"github.com/dmitrijs2005/lockbox/internal/models"
	"github.com/dmitrijs2005/lockbox/internal/session"
	"github.com/dmitrijs2005/lockbox/internal/storage"
	"github.com/dmitrijs2005/lockbox/internal/users"
	"github.com/dmitrijs2005/lockbox/internal/vault"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	store     storage.Store
	directory *users.Directory
	sessions  *session.Manager
	generator *generator.Generator
	clip      clipboard.Writer
	reader    *bufio.Reader

	// per-login state, created at login and destroyed at logout
	account  *models.Account
	vault    *vault.Vault
	category string
	search   string
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewDefault(cfg.LogLevel)

	store, err := storage.Open(ctx, cfg.StoreDriver, cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	directory := users.NewDirectory(store, cfg.HashScheme, log)

	var clip clipboard.Writer = clipboard.NewSystem()
	if !cfg.ClipboardEnabled {
		clip = clipboard.NewDisabled()
	}

	return &App{
		config:    cfg,
		log:       log,
		store:     store,
		directory: directory,
		sessions:  session.NewManager(store, directory, log),
		generator: generator.New(nil),
		clip:      clip,
		reader:    bufio.NewReader(os.Stdin),
		category:  vault.FilterAll,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.account != nil
}

func (a *App) getStatus() string {
	if a.account == nil {
		return "(locked)"
	}
	return fmt.Sprintf("(%s)", a.account.Name)
}

// unlock loads the vault for the authenticated account and resets the view
// filters, completing a login.
func (a *App) unlock(ctx context.Context, account *models.Account) error {
	v, err := vault.Open(ctx, a.store, account.ID, a.config.SeedDemoData, a.log)
	if err != nil {
		return err
	}
	a.account = account
	a.vault = v
	a.category = vault.FilterAll
	a.search = ""
	return nil
}

// lock drops every piece of per-login state.
func (a *App) lock() {
	if a.vault != nil {
		a.vault.Clear()
	}
	a.vault = nil
	a.account = nil
	a.category = vault.FilterAll
	a.search = ""
}

// scheduleClipboardClear wipes the clipboard after the configured delay so a
// copied secret does not linger. Purely a UI courtesy; a zero delay disables
// it.
func (a *App) scheduleClipboardClear() {
	if a.config.ClipboardClearAfter <= 0 {
		return
	}
	clip := a.clip
	time.AfterFunc(a.config.ClipboardClearAfter, func() {
		_ = clip.Write("")
	})
}

// resumeSession reopens the vault for a saved session before the first
// prompt. No saved session is the quiet normal case; any other failure is
// reported and leaves the vault locked.
func (a *App) resumeSession(ctx context.Context) {
	account, err := a.sessions.Resume(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrNoSession) {
			a.log.Error(ctx, "failed to resume session", "error", err)
			printlnFn("Could not resume your session: " + err.Error())
		}
		return
	}
	if err := a.unlock(ctx, account); err != nil {
		a.log.Error(ctx, "failed to reopen vault", "error", err)
		printlnFn("Could not reopen your vault: " + err.Error())
		return
	}
	printlnFn("Welcome back, " + account.Name + "!")
}

func (a *App) Run(ctx context.Context) error {
	defer a.store.Close()

	printlnFn("Lockbox (type 'help' for commands)")

	a.resumeSession(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	return nil
}
