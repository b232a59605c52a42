// Package strength scores candidate passwords with the vault's additive
// point scheme. The scheme is a fixed behavioral contract, not a serious
// entropy estimate; contributions stack and max out at 100.
package strength

import "unicode/utf16"

// Result describes a scored password. Percentage is the accumulated score,
// Label the qualitative bucket, ColorHint the display color associated with
// the bucket.
type Result struct {
	Percentage int
	Label      string
	ColorHint  string
}

// Score rates a password:
//
//	length ≥ 8 → +20, ≥ 12 → +20 more, ≥ 16 → +10 more
//	lowercase +15, uppercase +15, digit +10, other +10
//
// Buckets: <30 Weak, <60 Fair, <80 Good, else Very Strong. The empty
// password scores 0 with the label "No password".
func Score(password string) Result {
	if password == "" {
		return Result{Percentage: 0, Label: "No password", ColorHint: "#718096"}
	}

	score := 0

	// length in UTF-16 code units; astral characters count as two
	n := len(utf16.Encode([]rune(password)))
	if n >= 8 {
		score += 20
	}
	if n >= 12 {
		score += 20
	}
	if n >= 16 {
		score += 10
	}

	var lower, upper, digit, other bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}
	if lower {
		score += 15
	}
	if upper {
		score += 15
	}
	if digit {
		score += 10
	}
	if other {
		score += 10
	}

	switch {
	case score < 30:
		return Result{Percentage: score, Label: "Weak", ColorHint: "#ef4444"}
	case score < 60:
		return Result{Percentage: score, Label: "Fair", ColorHint: "#f59e0b"}
	case score < 80:
		return Result{Percentage: score, Label: "Good", ColorHint: "#3b82f6"}
	default:
		return Result{Percentage: score, Label: "Very Strong", ColorHint: "#10b981"}
	}
}
