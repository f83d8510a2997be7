package utils

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidCampusEmail accepts a well-formed address of at most 30 chars,
// matching the registration rules of the campus account system.
func ValidCampusEmail(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && len(s) <= 30 && emailPattern.MatchString(s)
}

// ValidCampusID accepts a 9-digit student id starting with 9.
func ValidCampusID(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 9 || !strings.HasPrefix(s, "9") {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
