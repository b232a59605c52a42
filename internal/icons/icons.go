// Package icons picks a display glyph for a credential from its website URL.
package icons

import (
	"net/url"
	"strings"
)

// Default is the generic lock glyph used when no table entry matches or the
// URL cannot be parsed.
const Default = "🔐"

// The table is ordered; the first key contained in the hostname wins.
var table = []struct {
	key   string
	glyph string
}{
	{"google.com", "🌐"},
	{"facebook.com", "📘"},
	{"twitter.com", "🐦"},
	{"instagram.com", "📷"},
	{"linkedin.com", "💼"},
	{"github.com", "🐙"},
	{"youtube.com", "📺"},
	{"amazon.com", "🛒"},
	{"netflix.com", "🎬"},
	{"spotify.com", "🎵"},
}

// ForWebsite returns the glyph for the given URL. Parse failures and URLs
// without a hostname (e.g. scheme-less strings) fall back to Default.
func ForWebsite(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return Default
	}
	host := strings.ToLower(u.Hostname())
	for _, e := range table {
		if strings.Contains(host, e.key) {
			return e.glyph
		}
	}
	return Default
}
