package fs

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxSlugLen bounds slugs so that file names stay well under common
// filesystem limits.
const maxSlugLen = 120

// Slug converts a title into a lowercase, hyphen-separated file name.
// Diacritics are removed and punctuation is dropped, so
// "Sédation: a Review" becomes "sedation-a-review". A title with no
// usable characters yields "untitled".
func Slug(title string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), title)
	if err != nil {
		stripped = title
	}

	var sb strings.Builder
	prevHyphen := false
	for _, r := range strings.ToLower(stripped) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if (unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)) && !prevHyphen && sb.Len() > 0 {
			sb.WriteRune('-')
			prevHyphen = true
		}
	}

	slug := sb.String()
	if r := []rune(slug); len(r) > maxSlugLen {
		slug = string(r[:maxSlugLen])
		if i := strings.LastIndexByte(slug, '-'); i > 0 {
			slug = slug[:i]
		}
	}
	slug = strings.TrimSuffix(slug, "-")

	if slug == "" {
		return "untitled"
	}
	return slug
}
