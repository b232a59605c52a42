package users

import (
	"crypto/subtle"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/crypto/bcrypt"
)

// Master-password hash schemes. SchemeLegacy reproduces the historical
// rolling hash and is the default; SchemeBcrypt is the hardened opt-in.
const (
	SchemeLegacy = "legacy"
	SchemeBcrypt = "bcrypt"
)

// LegacyHash is the historical master-password hash: a signed 32-bit rolling
// multiply-and-add over the UTF-16 code units of s, rendered in base 36
// (negative values keep the leading minus). Characters outside the BMP
// contribute their two surrogate units separately; folding runes instead
// would break existing directories.
//
// It is deterministic, unsalted, reversible in practice and collision-prone.
// It is preserved only for compatibility with existing directories; use the
// bcrypt scheme for anything beyond demonstration.
func LegacyHash(s string) string {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h<<5 - h + int32(u)
	}
	return strconv.FormatInt(int64(h), 36)
}

func hashPassword(scheme, password string) (string, error) {
	switch scheme {
	case SchemeBcrypt:
		b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("failed to hash password: %w", err)
		}
		return string(b), nil
	case SchemeLegacy:
		return LegacyHash(password), nil
	default:
		return "", fmt.Errorf("unknown hash scheme: %q", scheme)
	}
}

// verifyPassword dispatches on the stored hash's format, not on the
// configured scheme, so accounts created under either scheme keep working
// after the scheme is switched.
func verifyPassword(stored, password string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	candidate := LegacyHash(password)
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
