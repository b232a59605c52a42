package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/lockbox/internal/common"
	"github.com/dmitrijs2005/lockbox/internal/generator"
	"github.com/dmitrijs2005/lockbox/internal/strength"
)

const defaultGenLength = 16

// parseClasses interprets a class spec like "uld" or "ulds": u=upper,
// l=lower, d=digits, s=symbols.
func parseClasses(spec string) (generator.Classes, error) {
	var c generator.Classes
	for _, r := range spec {
		switch r {
		case 'u':
			c.Upper = true
		case 'l':
			c.Lower = true
		case 'd':
			c.Digit = true
		case 's':
			c.Symbol = true
		default:
			return c, fmt.Errorf("unknown character class: %q", r)
		}
	}
	return c, nil
}

// Generate produces a random password and prints it with its strength.
// Usage: gen [length] [classes], defaulting to 16 characters from all
// classes. Available while logged out as well; generation touches no state.
func (a *App) Generate(ctx context.Context, args []string) error {
	length := defaultGenLength
	classes := generator.AllClasses()

	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			printlnFn("Usage: gen [length] [classes], e.g. gen 20 uld")
			return fmt.Errorf("invalid length: %q", args[0])
		}
		length = n
	}
	if len(args) > 1 {
		c, err := parseClasses(strings.ToLower(args[1]))
		if err != nil {
			printlnFn("Classes: u=upper, l=lower, d=digits, s=symbols")
			return err
		}
		classes = c
	}

	password, err := a.generator.Generate(length, classes)
	if err != nil {
		if errors.Is(err, common.ErrNoCharacterClass) {
			printlnFn("Please select at least one character type")
		}
		return err
	}

	s := strength.Score(password)
	printlnFn(password)
	printlnFn(fmt.Sprintf("Strength: %s (%d%%)", s.Label, s.Percentage))
	return nil
}
