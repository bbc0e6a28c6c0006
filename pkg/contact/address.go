package contact

import (
	"regexp"
	"strings"
)

var (
	bareAddress  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	namedAddress = regexp.MustCompile(`^.+\s<[^\s@]+@[^\s@]+\.[^\s@]+>$`)
)

// ResolveSender returns the trimmed candidate when it is a bare address or a
// "Display Name <address>" form, otherwise DefaultFromEmail.
func ResolveSender(candidate string) string {
	candidate = strings.TrimSpace(candidate)
	if candidate != "" && (bareAddress.MatchString(candidate) || namedAddress.MatchString(candidate)) {
		return candidate
	}
	return DefaultFromEmail
}
