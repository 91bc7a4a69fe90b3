package driver

import (
	"context"
	"fmt"

	"unifix/internal/norm"
	"unifix/internal/observ"
)

// NormalizeResult summarizes one file rewrite.
type NormalizeResult struct {
	Input     string
	Output    string
	Changed   int // lines that differed from their normalized form
	Processed int // total lines handled
	Timing    *observ.Report
}

// NormalizePath rewrites input into output under the selected form.
// Тонкая обёртка над norm.NormalizeFile: добавляет тайминги и контекст.
func NormalizePath(ctx context.Context, input, output string, opts Options) (*NormalizeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}

	var done func(string)
	if timer != nil {
		done = timer.Phase("normalize")
	}
	changed, processed, err := norm.New(opts.Form).NormalizeFile(input, output)
	if err != nil {
		return nil, err
	}
	if done != nil {
		done(fmt.Sprintf("%d/%d lines changed", changed, processed))
	}

	result := &NormalizeResult{
		Input:     input,
		Output:    output,
		Changed:   changed,
		Processed: processed,
	}
	if timer != nil {
		rep := timer.Report()
		result.Timing = &rep
	}
	return result, nil
}
