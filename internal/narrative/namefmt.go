package narrative

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SanitizeName normalizes a player-facing name to NFC form and trims
// stray whitespace before it is interpolated into commentary templates,
// so diacritics compose consistently regardless of how the roster
// source encoded them.
func SanitizeName(name string) string {
	return strings.TrimSpace(norm.NFC.String(name))
}
