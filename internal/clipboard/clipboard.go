// Package clipboard abstracts the system clipboard behind a small Writer
// interface so the CLI can be tested without touching the real clipboard.
package clipboard

// Writer puts text on a clipboard.
type Writer interface {
	Write(text string) error
}
