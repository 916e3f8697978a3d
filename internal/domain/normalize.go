package domain

import "strings"

// NormalizeName folds a species or common name for lookup: trimmed,
// lowercased, with internal whitespace runs collapsed to one space.
// Diacritics, hyphens and apostrophes are kept.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
