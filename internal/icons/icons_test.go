package icons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForWebsite(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "known domain", url: "https://github.com/login", want: "🐙"},
		{name: "subdomain contains key", url: "https://accounts.google.com", want: "🌐"},
		{name: "case insensitive host", url: "https://WWW.NETFLIX.COM", want: "🎬"},
		{name: "unknown domain", url: "https://example.org", want: Default},
		{name: "no scheme means no host", url: "facebook.com", want: Default},
		{name: "unparsable", url: ":missing-scheme", want: Default},
		{name: "empty", url: "", want: Default},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForWebsite(tt.url))
		})
	}
}
