package validate

import (
	"regexp"
	"strings"
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Email trims and lower-cases the address; the lower-cased form is what gets
// stored and compared, so duplicate checks are case-insensitive.
func Email(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Required trims a free-form field and reports whether anything is left.
func Required(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// ID validates an opaque path identifier: non-empty after trim.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Qty accepts a non-negative quantity.
func Qty(n int) bool { return n >= 0 }

// Price accepts a positive amount.
func Price(p float64) bool { return p > 0 }
