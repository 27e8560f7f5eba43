package models

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NewMarketID builds the canonical market identifier: lowercase, accent-free,
// hyphen-joined region and city tokens, e.g. ("CA", "Irvine") -> "ca-irvine".
func NewMarketID(state, city string) string {
	region := slugify(state)
	place := slugify(city)
	switch {
	case region == "":
		return place
	case place == "":
		return region
	}
	return region + "-" + place
}

// DisplayName title-cases a city token for presentation, e.g. "st. george" -> "St. George"
func DisplayName(city string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.TrimSpace(city))
}

func slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	pendingHyphen := false
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		if r == '\'' || r == '’' {
			// "coeur d'alene" -> "coeur-dalene"
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
