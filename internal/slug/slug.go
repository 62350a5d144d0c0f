// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var separators = regexp.MustCompile(`[^a-z0-9]+`)

// sharpS has no decomposition, so it is spelled out before folding.
var sharpS = strings.NewReplacer("ß", "ss", "ẞ", "SS")

// Make returns the lowercase, hyphen-joined slug for name. Accented Latin
// letters are folded to their base letter, ligatures and other
// compatibility forms to their plain spelling, and every run of other characters
// becomes a single hyphen and hyphens at either end are trimmed.
//
// Make is idempotent: Make(Make(s)) == Make(s).
func Make(name string) string {
	s := strings.ToLower(fold(name))
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// fold applies compatibility decomposition and strips combining marks. A
// transformer holds state, so one is built per call.
func fold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, sharpS.Replace(s))
	if err != nil {
		return s
	}
	return out
}
