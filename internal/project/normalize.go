package project

import "strings"

// Normalize canonicalizes a name for fuzzy matching: lowercase with
// hyphens, underscores, and spaces removed, so "Daily Digest" and
// "daily-digest" compare equal.
func Normalize(name string) string {
	name = strings.ToLower(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, name)
}
