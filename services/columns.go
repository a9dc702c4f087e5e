package services

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Alias tables for the logical import fields. Order matters: the first alias
// that matches any uploaded column wins. Kept as data so new spellings can be
// added without touching the matching algorithm.
var (
	NameColumnAliases = []string{
		"referencia", "ref", "reference", "nombre", "name", "producto",
	}
	PriceColumnAliases = []string{
		"precio_unitario", "precio unitario", "precio", "costo", "cost",
		"unit_price", "base",
	}
)

// accentFolder decomposes characters and drops combining marks, so that
// "Álvaro" and "Alvaro" compare equal.
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeLabel canonicalizes a column label (or category value) for
// comparison: lowercase, accents folded, spaces/underscores/hyphens removed.
func normalizeLabel(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if folded, _, err := transform.String(accentFolder, s); err == nil {
		s = folded
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '_', '-':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ResolveColumn finds the header index for a logical field given its ordered
// alias list. Aliases are tried in order and the first one that matches any
// header (in header order) wins. Returns -1 when nothing matches.
func ResolveColumn(headers []string, aliases []string) int {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = normalizeLabel(h)
	}
	for _, alias := range aliases {
		want := normalizeLabel(alias)
		for i, h := range normalized {
			if h == want {
				return i
			}
		}
	}
	return -1
}
