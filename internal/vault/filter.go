package vault

import (
	"strings"

	"github.com/dmitrijs2005/lockbox/internal/models"
)

// Pseudo-categories accepted by Filter in addition to the stored ones.
const (
	FilterAll       = "all"
	FilterFavorites = "favorites"
)

// Filter returns the credentials matching the category selection and search
// term, preserving insertion order. It never mutates the collection.
//
// Category: "all" keeps everything, "favorites" keeps favorite records, any
// other value keeps exact category matches. The search term is a
// case-insensitive substring match against account name, username or
// website, applied after the category stage; an empty term keeps everything.
func Filter(credentials []models.Credential, category string, term string) []models.Credential {
	filtered := make([]models.Credential, 0, len(credentials))

	for _, c := range credentials {
		switch category {
		case FilterAll, "":
		case FilterFavorites:
			if !c.Favorite {
				continue
			}
		default:
			if string(c.Category) != category {
				continue
			}
		}
		filtered = append(filtered, c)
	}

	needle := strings.ToLower(term)
	if needle == "" {
		return filtered
	}

	matched := make([]models.Credential, 0, len(filtered))
	for _, c := range filtered {
		if strings.Contains(strings.ToLower(c.AccountName), needle) ||
			strings.Contains(strings.ToLower(c.Username), needle) ||
			strings.Contains(strings.ToLower(c.Website), needle) {
			matched = append(matched, c)
		}
	}
	return matched
}

// Filter applies Filter to the vault's collection.
func (v *Vault) Filter(category string, term string) []models.Credential {
	return Filter(v.credentials, category, term)
}

// Counts holds the sidebar tallies: total records, favorites and per stored
// category.
type Counts struct {
	Total      int
	Favorites  int
	ByCategory map[models.Category]int
}

// Counts tallies the current collection.
func (v *Vault) Counts() Counts {
	c := Counts{ByCategory: make(map[models.Category]int, len(models.Categories))}
	for _, cat := range models.Categories {
		c.ByCategory[cat] = 0
	}
	for _, cred := range v.credentials {
		c.Total++
		if cred.Favorite {
			c.Favorites++
		}
		c.ByCategory[cred.Category]++
	}
	return c
}
