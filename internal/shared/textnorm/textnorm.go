// Package textnorm normalizes user supplied search text so that Go side
// comparisons and SQL LIKE patterns agree.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var lower = cases.Lower(language.Und)

// Normalize trims t, composes it to NFC and lower-cases it.
func Normalize(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return ""
	}
	return Fold(t)
}

// Fold composes t to NFC and lower-cases it across all scripts. Stored
// text folded this way compares equal to a Normalize'd search term.
func Fold(t string) string {
	return lower.String(norm.NFC.String(t))
}

// LikeEscape is the escape character used in LIKE patterns. It is quoted
// the same way by SQLite and MySQL.
const LikeEscape = "!"

var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)

// ContainsPattern returns a LIKE pattern matching any value that contains t.
// Use it with ESCAPE '!'.
func ContainsPattern(t string) string {
	return "%" + likeEscaper.Replace(Normalize(t)) + "%"
}

// IsBlank reports whether t has no visible content.
func IsBlank(t string) bool {
	return strings.TrimSpace(t) == ""
}
