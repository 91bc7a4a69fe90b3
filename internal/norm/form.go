package norm

import (
	"fmt"
	"strings"

	xnorm "golang.org/x/text/unicode/norm"
)

// Form selects the Unicode normalization form a Normalizer applies.
type Form uint8

const (
	// NFKC is the compatibility composition form, the default: it folds
	// compatibility variants (fullwidth, circled, CJK radicals, ...) and
	// recomposes combining sequences into precomposed characters.
	NFKC Form = iota
	NFC
	NFD
	NFKD
)

// Forms lists every supported form in display order.
func Forms() []Form {
	return []Form{NFC, NFD, NFKC, NFKD}
}

func (f Form) String() string {
	switch f {
	case NFC:
		return "NFC"
	case NFD:
		return "NFD"
	case NFKC:
		return "NFKC"
	case NFKD:
		return "NFKD"
	}
	return "UNKNOWN"
}

// ParseForm converts a user-facing name (case-insensitive) into a Form.
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nfc":
		return NFC, nil
	case "nfd":
		return NFD, nil
	case "nfkc", "":
		return NFKC, nil
	case "nfkd":
		return NFKD, nil
	}
	return NFKC, fmt.Errorf("unknown normalization form: %q (must be nfc|nfd|nfkc|nfkd)", s)
}

// transform возвращает реализацию из x/text.
func (f Form) transform() xnorm.Form {
	switch f {
	case NFC:
		return xnorm.NFC
	case NFD:
		return xnorm.NFD
	case NFKD:
		return xnorm.NFKD
	default:
		return xnorm.NFKC
	}
}

// StableRune reports whether a single rune survives the form unchanged.
// Used by the compare inspection table; input runes are always valid here.
func (f Form) StableRune(r rune) bool {
	s := string(r)
	return f.transform().String(s) == s
}
