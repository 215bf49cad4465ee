package source

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize folds compatibility characters (no-break spaces, ligatures,
// full-width digits) with NFKC and converts line endings to "\n".
func Normalize(s string) string {
	return lineEndings.Replace(norm.NFKC.String(s))
}
