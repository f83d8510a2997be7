package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeMoney validates a user-supplied price and returns it as
// canonical decimal text ("12.50"). Currency values stay text end to
// end; they are never converted to binary floating point.
func NormalizeMoney(s string) (string, error) {
	cents, err := MoneyCents(s)
	if err != nil {
		return "", err
	}
	return FormatCents(cents), nil
}

// MoneyCents parses decimal text into an integer amount of cents.
// Negative amounts are rejected.
func MoneyCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("negative amount")
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	var f int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || f < 0 {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		if len(frac) == 1 {
			f *= 10
		}
	}

	return w*100 + f, nil
}

// FormatCents renders an integer amount of cents as decimal text.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
