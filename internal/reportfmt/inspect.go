package reportfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"unifix/internal/chardiff"
	"unifix/internal/norm"
)

// InspectOpts configures the per-character table of the compare command.
type InspectOpts struct {
	Color bool
}

// Inspect prints one character per row: index, the character itself, its code
// point in hex and decimal, and per-form stability (whether the character
// survives each normalization form unchanged). Ширина колонки с символом
// выравнивается по runewidth: CJK занимает две клетки.
func Inspect(w io.Writer, label, text string, opts InspectOpts) {
	p := newPalette(opts.Color)

	fmt.Fprintf(w, "%s %q\n", p.path.Sprint(label+":"), text)
	if text == "" {
		fmt.Fprintf(w, "  %s\n", p.dim.Sprint("(empty string)"))
		return
	}

	forms := norm.Forms()
	header := fmt.Sprintf("  %4s  %-4s  %-8s  %8s", "#", "char", "codepoint", "decimal")
	for _, f := range forms {
		header += fmt.Sprintf("  %-4s", f)
	}
	fmt.Fprintln(w, p.dim.Sprint(header))

	idx := 0
	for _, r := range text {
		cell := string(r)
		pad := 4 - runewidth.StringWidth(cell)
		if pad < 0 {
			pad = 0
		}
		row := fmt.Sprintf("  %4d  %s%s  %-8s  %8d", idx, cell, strings.Repeat(" ", pad), fmt.Sprintf("U+%04X", r), r)
		for _, f := range forms {
			mark, c := "yes", p.ins
			if !f.StableRune(r) {
				mark, c = "no", p.del
			}
			row += "  " + c.Sprintf("%-4s", mark)
		}
		fmt.Fprintln(w, row)
		idx++
	}
}

// Verdict prints the equivalence conclusion for two strings under one form,
// with the hex code points of both normalized values and, when they differ,
// the positional differences between them. Returns whether the strings are
// equivalent.
func Verdict(w io.Writer, a, b string, form norm.Form, opts InspectOpts) (bool, error) {
	p := newPalette(opts.Color)
	n := norm.New(form)

	na, err := n.Normalize(a)
	if err != nil {
		return false, fmt.Errorf("first string: %w", err)
	}
	nb, err := n.Normalize(b)
	if err != nil {
		return false, fmt.Errorf("second string: %w", err)
	}

	fmt.Fprintf(w, "%s(a) = %s\n", form, norm.ToHexCodePoints(na))
	fmt.Fprintf(w, "%s(b) = %s\n", form, norm.ToHexCodePoints(nb))

	if na == nb {
		fmt.Fprintf(w, "%s\n", p.ins.Sprintf("equivalent under %s", form))
		return true, nil
	}

	fmt.Fprintf(w, "%s\n", p.del.Sprintf("NOT equivalent under %s", form))
	for _, ch := range chardiff.Diff(na, nb) {
		fmt.Fprintf(w, "  %s %q (U+%04X) vs %q (U+%04X)\n",
			p.pos.Sprintf("pos %d:", ch.Pos),
			ch.Original, ch.Original, ch.Normalized, ch.Normalized)
	}
	if la, lb := len([]rune(na)), len([]rune(nb)); la != lb {
		fmt.Fprintf(w, "  %s\n", p.dim.Sprintf("lengths differ: %d vs %d code points", la, lb))
	}
	return false, nil
}
