// Package reportfmt renders normalization reports for the console: a pretty
// per-line view, a JSON payload, and the per-character inspection table used
// by the compare command. Никакой логики проверки здесь нет — только вывод.
package reportfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"unifix/internal/norm"
	"unifix/internal/report"
	"unifix/internal/source"
)

type palette struct {
	path *color.Color
	del  *color.Color
	ins  *color.Color
	pos  *color.Color
	dim  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path: color.New(color.Bold),
		del:  color.New(color.FgRed),
		ins:  color.New(color.FgGreen),
		pos:  color.New(color.FgCyan),
		dim:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.path, p.del, p.ins, p.pos, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty renders one file's issues. Ожидается bag.Sort() заранее.
// Подробно печатаются первые maxDetailed issues, остальные — одной строкой
// сводки.
func Pretty(w io.Writer, fs *source.FileSet, path string, bag *report.Bag, form norm.Form, opts PrettyOpts) {
	p := newPalette(opts.Color)
	displayPath := displayPath(fs, path, opts.PathMode)

	items := bag.Items()
	if len(items) == 0 {
		fmt.Fprintf(w, "%s: all lines already in %s form\n", p.path.Sprint(displayPath), form)
		return
	}

	fmt.Fprintf(w, "%s: %d line(s) not in %s form\n", p.path.Sprint(displayPath), len(items), form)

	detailed := items
	if len(detailed) > opts.maxDetailed() {
		detailed = detailed[:opts.maxDetailed()]
	}

	for _, issue := range detailed {
		fmt.Fprintf(w, "  line %d:\n", issue.Line)
		fmt.Fprintf(w, "    %s %s\n", p.del.Sprint("-"), issue.Original)
		fmt.Fprintf(w, "    %s %s\n", p.ins.Sprint("+"), issue.Normalized)
		if opts.ShowHex {
			fmt.Fprintf(w, "      %s\n", p.dim.Sprintf("hex: %s -> %s",
				norm.ToHexCodePoints(issue.Original), norm.ToHexCodePoints(issue.Normalized)))
		}
		for _, ch := range issue.Changes {
			fmt.Fprintf(w, "      %s %q (U+%04X) -> %q (U+%04X)\n",
				p.pos.Sprintf("pos %d:", ch.Pos),
				ch.Original, ch.Original, ch.Normalized, ch.Normalized)
		}
		if len(issue.Changes) == 0 {
			// нормализация только изменила длину, позиционных отличий нет
			fmt.Fprintf(w, "      %s\n", p.dim.Sprint("(length change only)"))
		}
	}

	if rest := len(items) - len(detailed); rest > 0 {
		fmt.Fprintf(w, "  %s\n", p.dim.Sprintf("... and %d more line(s)", rest))
	}
	if bag.Len() == int(bag.Cap()) {
		fmt.Fprintf(w, "  %s\n", p.dim.Sprint("issue limit reached; raise --max-issues to collect more"))
	}
}

func displayPath(fs *source.FileSet, path string, mode PathMode) string {
	if fs == nil {
		return path
	}
	return fs.DisplayPath(path, mode == PathModeAbsolute)
}
