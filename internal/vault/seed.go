package vault

import (
	"time"

	"github.com/dmitrijs2005/lockbox/internal/icons"
	"github.com/dmitrijs2005/lockbox/internal/models"
)

// demoCredentials builds the example entries a brand-new vault is seeded
// with. Ids follow the creation timestamp, offset to stay distinct.
func demoCredentials(now time.Time) []models.Credential {
	base := now.UnixMilli()
	demo := []struct {
		website     string
		accountName string
		username    string
		password    string
		category    models.Category
	}{
		{"https://google.com", "Google.com", "user@google.com", "SecurePass123!", models.CategoryWork},
		{"https://facebook.com", "Facebook", "@facebook", "MyPass456!", models.CategorySocial},
		{"https://twitter.com", "Twitter", "@twitter", "Tweet789!", models.CategorySocial},
	}

	out := make([]models.Credential, 0, len(demo))
	for i, d := range demo {
		out = append(out, models.Credential{
			ID:          base + int64(i) + 1,
			Website:     d.website,
			AccountName: d.accountName,
			Username:    d.username,
			Password:    d.password,
			Category:    d.category,
			Favorite:    false,
			Icon:        icons.ForWebsite(d.website),
		})
	}
	return out
}
