// Package norm wraps the Unicode normalization transform from
// golang.org/x/text and exposes the checking primitives the CLI builds on:
// normalize a string, compare two strings under normalization, and inspect a
// single line for issues.
//
// The transform itself is trusted as-is (see UAX #15); this package never
// reimplements any part of it. See also unicode.org/reports/tr36 for why
// NFKC is the form of choice when hunting inconsistent encodings.
package norm

import (
	"errors"
	"unicode/utf8"

	"unifix/internal/chardiff"
	"unifix/internal/report"
)

// ErrInvalidUTF8 is returned when input text is not well-formed UTF-8.
// Операция падает только для этой строки; весь прогон по файлу не прерывается.
var ErrInvalidUTF8 = errors.New("text is not valid UTF-8")

// Normalizer applies one fixed normalization form. Безопасен для
// конкурентного использования: состояния нет.
type Normalizer struct {
	form Form
}

func New(form Form) *Normalizer {
	return &Normalizer{form: form}
}

// Default returns an NFKC normalizer, the form the checker uses unless
// configured otherwise.
func Default() *Normalizer {
	return New(NFKC)
}

func (n *Normalizer) Form() Form {
	return n.form
}

// Normalize returns the normalized copy of text. It never panics; malformed
// input is rejected with ErrInvalidUTF8 instead of being passed through with
// replacement characters.
func (n *Normalizer) Normalize(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", ErrInvalidUTF8
	}
	return n.form.transform().String(text), nil
}

// IsEquivalent reports whether a and b normalize to the same code-point
// sequence. Exact comparison, no locale anywhere.
func (n *Normalizer) IsEquivalent(a, b string) (bool, error) {
	na, err := n.Normalize(a)
	if err != nil {
		return false, err
	}
	nb, err := n.Normalize(b)
	if err != nil {
		return false, err
	}
	return na == nb, nil
}

// CheckLine normalizes one line and, if anything changed, packages the
// positional differences into an issue. Returns (nil, nil) for lines already
// in normalized form. This is the single entry point the file driver calls
// per line.
func (n *Normalizer) CheckLine(lineNumber int, line string) (*report.Issue, error) {
	normalized, err := n.Normalize(line)
	if err != nil {
		return nil, err
	}
	if normalized == line {
		return nil, nil
	}
	return &report.Issue{
		Line:       lineNumber,
		Original:   line,
		Normalized: normalized,
		Changes:    chardiff.Diff(line, normalized),
	}, nil
}
