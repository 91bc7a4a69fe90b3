package report

import (
	"unifix/internal/chardiff"
)

// Issue describes one line whose normalized form differs from the original.
// Value record: построен один раз, дальше не мутируется.
type Issue struct {
	Line       int // 1-based line number in the source file
	Original   string
	Normalized string
	Changes    []chardiff.Change // ordered by ascending Pos; empty when only the length changed
}
