package pokeapi

import (
	"strings"
)

// accentFold maps accented vowels to their ASCII form ("Flabébé" -> "flabebe")
var accentFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ä': 'a', 'ã': 'a', 'å': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'ö': 'o', 'õ': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
}

// genderSuffix maps the gender symbols used in display names to PokéAPI suffixes
var genderSuffix = map[rune]byte{
	'♀': 'f',
	'♂': 'm',
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '-', '_', '/', ':':
		return true
	}
	return false
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// NormalizeName converts a display name into a PokéAPI identifier, e.g.
// "Mr. Mime" -> "mr-mime", "Nidoran♀" -> "nidoran-f", "Type: Null" -> "type-null".
// The result only contains lowercase ASCII letters, digits and single hyphens,
// and normalizing it again yields the same string.
func NormalizeName(name string) string {
	var b strings.Builder
	lastWasDash := false

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if folded, ok := accentFold[r]; ok {
			r = folded
		}

		if suffix, ok := genderSuffix[r]; ok {
			if b.Len() > 0 && !lastWasDash {
				b.WriteByte('-')
			}
			b.WriteByte(suffix)
			lastWasDash = false
			continue
		}

		switch {
		case isASCIIAlnum(r):
			b.WriteRune(r)
			lastWasDash = false
		case isSeparator(r):
			if b.Len() > 0 && !lastWasDash {
				b.WriteByte('-')
				lastWasDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
