package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lockbox/internal/models"
	"github.com/dmitrijs2005/lockbox/internal/vault"
)

var categoryTitles = map[string]string{
	vault.FilterAll:       "All Items",
	vault.FilterFavorites: "Favorites",
	"banking":             "Banking",
	"social":              "Social Media",
	"work":                "Work",
	"other":               "Other",
}

// List renders the collection through the active category and search
// filters, in insertion order.
func (a *App) List(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	title := categoryTitles[a.category]
	if a.search != "" {
		title += fmt.Sprintf(" matching %q", a.search)
	}
	printlnFn(title)

	filtered := a.vault.Filter(a.category, a.search)
	if len(filtered) == 0 {
		printlnFn("No passwords found")
		return nil
	}
	for _, c := range filtered {
		printlnFn(formatOverview(c))
	}
	return nil
}

// FilterCategory selects the category filter applied by List.
func (a *App) FilterCategory(ctx context.Context, category string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if _, ok := categoryTitles[category]; !ok {
		printlnFn("Unknown category:", category)
		return nil
	}
	a.category = category
	return a.List(ctx)
}

// Search sets the search term applied by List; an empty term clears it.
func (a *App) Search(ctx context.Context, term string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	a.search = term
	return a.List(ctx)
}

// Counts prints the per-category tallies.
func (a *App) Counts(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	c := a.vault.Counts()
	printlnFn(fmt.Sprintf("All: %d  Favorites: %d", c.Total, c.Favorites))
	for _, cat := range models.Categories {
		printlnFn(fmt.Sprintf("  %s: %d", categoryTitles[string(cat)], c.ByCategory[cat]))
	}
	return nil
}

// formatOverview renders a single collection row. The password itself is
// never shown here, only through the show command.
func formatOverview(c models.Credential) string {
	fav := " "
	if c.Favorite {
		fav = "*"
	}
	return fmt.Sprintf("%d  %s %s %s (%s) [%s]",
		c.ID, c.Icon, fav, sanitizeText(c.AccountName), sanitizeText(c.Username), c.Category)
}
