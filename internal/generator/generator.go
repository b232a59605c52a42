// Package generator produces random passwords from a configurable union of
// character classes.
package generator

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/lockbox/internal/common"
)

// Fixed character sets. The pool is always assembled in this order (upper,
// lower, digit, symbol) so output is deterministic for a fixed Source.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Classes selects which character sets take part in generation.
type Classes struct {
	Upper  bool
	Lower  bool
	Digit  bool
	Symbol bool
}

// AllClasses enables every character class.
func AllClasses() Classes {
	return Classes{Upper: true, Lower: true, Digit: true, Symbol: true}
}

func (c Classes) pool() string {
	var b strings.Builder
	if c.Upper {
		b.WriteString(Uppercase)
	}
	if c.Lower {
		b.WriteString(Lowercase)
	}
	if c.Digit {
		b.WriteString(Digits)
	}
	if c.Symbol {
		b.WriteString(Symbols)
	}
	return b.String()
}

// Generator draws passwords from a Source of uniform integers.
type Generator struct {
	src Source
}

// New returns a Generator backed by src; a nil src means crypto/rand.
func New(src Source) *Generator {
	if src == nil {
		src = CryptoSource{}
	}
	return &Generator{src: src}
}

// Generate returns a password of the given length drawn independently and
// uniformly from the pool of the selected classes. An empty class set yields
// common.ErrNoCharacterClass.
//
// Each draw is uniform over the whole pool, so the output is not guaranteed
// to contain a character from every selected class.
func (g *Generator) Generate(length int, classes Classes) (string, error) {
	pool := classes.pool()
	if pool == "" {
		return "", common.ErrNoCharacterClass
	}
	if length < 1 {
		return "", fmt.Errorf("password length must be at least 1")
	}

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		idx, err := g.src.IntN(len(pool))
		if err != nil {
			return "", fmt.Errorf("failed to draw random index: %w", err)
		}
		sb.WriteByte(pool[idx])
	}
	return sb.String(), nil
}
