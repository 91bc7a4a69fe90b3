package norm

import (
	"fmt"
	"strings"
)

// ToHexCodePoints renders each rune's scalar value as uppercase hex,
// zero-padded to at least 4 digits, concatenated without delimiter:
// "AB" -> "00410042". Diagnostic display only — the rendering is not
// reversible for code points above U+FFFF.
func ToHexCodePoints(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 4)
	for _, r := range text {
		fmt.Fprintf(&b, "%04X", r)
	}
	return b.String()
}
