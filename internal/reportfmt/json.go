package reportfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"unifix/internal/norm"
	"unifix/internal/observ"
	"unifix/internal/report"
	"unifix/internal/source"
)

// ChangeOutput is the JSON view of one positional difference.
type ChangeOutput struct {
	Pos        int    `json:"pos"`
	Original   string `json:"original"`
	Normalized string `json:"normalized"`
	OriginalCP string `json:"original_codepoint"`
	NormalCP   string `json:"normalized_codepoint"`
}

// IssueOutput is the JSON view of one line needing normalization.
type IssueOutput struct {
	Line       int            `json:"line"`
	Original   string         `json:"original"`
	Normalized string         `json:"normalized"`
	Changes    []ChangeOutput `json:"changes,omitempty"`
}

// FileOutput is the JSON view of one checked file.
type FileOutput struct {
	Path       string         `json:"path"`
	Form       string         `json:"form"`
	IssueCount int            `json:"issue_count"`
	Issues     []IssueOutput  `json:"issues,omitempty"`
	Errors     []string       `json:"errors,omitempty"`
	FromCache  bool           `json:"from_cache,omitempty"`
	Timing     *observ.Report `json:"timing,omitempty"`
}

// BuildFileOutput converts a checked file's bag into its JSON payload.
// Ожидается bag.Sort() заранее.
func BuildFileOutput(fs *source.FileSet, path string, bag *report.Bag, form norm.Form, opts JSONOpts) FileOutput {
	out := FileOutput{
		Path: displayPath(fs, path, opts.PathMode),
		Form: form.String(),
	}
	if bag == nil {
		return out
	}
	out.IssueCount = bag.Len()
	for _, issue := range bag.Items() {
		item := IssueOutput{
			Line:       issue.Line,
			Original:   issue.Original,
			Normalized: issue.Normalized,
		}
		if opts.IncludeChanges {
			for _, ch := range issue.Changes {
				item.Changes = append(item.Changes, ChangeOutput{
					Pos:        ch.Pos,
					Original:   string(ch.Original),
					Normalized: string(ch.Normalized),
					OriginalCP: fmt.Sprintf("U+%04X", ch.Original),
					NormalCP:   fmt.Sprintf("U+%04X", ch.Normalized),
				})
			}
		}
		out.Issues = append(out.Issues, item)
	}
	return out
}

// JSON encodes the payloads with the usual two-space indent.
func JSON(w io.Writer, outputs []FileOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(outputs); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
