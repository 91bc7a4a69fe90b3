package chardiff

// Change records a single positional divergence between an original string
// and its normalized counterpart.
type Change struct {
	Pos        int  // 0-based rune index
	Original   rune // rune at Pos in the original string
	Normalized rune // rune at Pos in the normalized string
}

// Diff walks both strings rune-by-rune from position 0 and records every
// index where they disagree. Both cursors advance together on each step, so
// this is a positional comparison, not an alignment diff: an insertion or
// deletion shifts the tail and shows up as a cascade of mismatches.
//
// Comparison stops at the shorter rune length; trailing runes of the longer
// string are not reported. Callers that care about a length change compare
// the inputs themselves.
//
// Результат пуст тогда и только тогда, когда строки совпадают до длины
// короткой.
func Diff(original, normalized string) []Change {
	a := []rune(original)
	b := []rune(normalized)

	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var changes []Change
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			changes = append(changes, Change{Pos: i, Original: a[i], Normalized: b[i]})
		}
	}
	return changes
}
