package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"unifix/internal/driver"
	"unifix/internal/reportfmt"
	"unifix/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file|directory>",
	Short: "Check text files for lines not in normalized form",
	Long:  `Check a UTF-8 text file (or every matching file within a directory) line-by-line and report lines whose normalized form differs from the original`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("hex", false, "include hex code-point dumps in pretty output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("disk-cache", false, "skip files previously verified clean (experimental)")
	checkCmd.Flags().Bool("ui", false, "render directory progress interactively")
}

// runCheck executes the "check" command: it resolves options from flags and
// unifix.toml, runs the check for a single file or a directory, renders the
// results, and exits non-zero when any line needs normalization.
func runCheck(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	showHex, err := cmd.Flags().GetBool("hex")
	if err != nil {
		return fmt.Errorf("failed to get hex flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	diskCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	withUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}
	opts.EnableDiskCache = diskCache

	color, err := useColor(cmd)
	if err != nil {
		return err
	}

	st, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if withUI && (!st.IsDir() || format != "pretty") {
		return fmt.Errorf("--ui requires a directory target and pretty output")
	}

	var (
		fileSet *source.FileSet
		results []*driver.FileResult
	)
	if st.IsDir() {
		if withUI {
			fileSet, results, err = runCheckDirWithUI(cmd.Context(), targetPath, opts, jobs)
		} else {
			fileSet, results, err = driver.CheckDir(cmd.Context(), targetPath, opts, jobs, nil)
		}
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
	} else {
		var result *driver.FileResult
		fileSet, result, err = driver.CheckFile(cmd.Context(), targetPath, opts)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		if result.LoadErr != nil {
			return fmt.Errorf("check failed: %w", result.LoadErr)
		}
		results = []*driver.FileResult{result}
	}

	pathMode := reportfmt.PathModeAuto
	if fullPath {
		pathMode = reportfmt.PathModeAbsolute
	}

	hasIssues := false
	hasErrors := false
	for _, r := range results {
		if r == nil {
			continue
		}
		r.Bag.Sort()
		if r.HasIssues() {
			hasIssues = true
		}
		if r.Failed() {
			hasErrors = true
		}
	}

	switch format {
	case "pretty":
		prettyOpts := reportfmt.PrettyOpts{
			Color:    color,
			PathMode: pathMode,
			ShowHex:  showHex,
		}
		renderCheckPretty(results, fileSet, opts, prettyOpts)
	case "json":
		jsonOpts := reportfmt.JSONOpts{
			PathMode:       pathMode,
			IncludeChanges: true,
		}
		if err := renderCheckJSON(results, fileSet, opts, jsonOpts); err != nil {
			return err
		}
	}

	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	if showTimings {
		for _, r := range results {
			if r != nil && r.Timing != nil {
				fmt.Fprintf(os.Stderr, "%s:\n%s", r.Path, r.Timing.Summary())
			}
		}
	}

	if hasErrors {
		// Suppress cobra usage output: per-file errors already printed
		cmd.SilenceUsage = true
		return fmt.Errorf("some files could not be checked")
	}
	if hasIssues {
		// Suppress cobra usage output: report already printed
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

func renderCheckPretty(results []*driver.FileResult, fileSet *source.FileSet, opts driver.Options, prettyOpts reportfmt.PrettyOpts) {
	first := true
	for _, r := range results {
		if r == nil {
			continue
		}
		if !first {
			fmt.Fprintln(os.Stdout)
		}
		first = false

		if r.LoadErr != nil {
			fmt.Fprintf(os.Stderr, "check: %s: %v\n", r.Path, r.LoadErr)
			continue
		}
		reportfmt.Pretty(os.Stdout, fileSet, r.Path, r.Bag, opts.Form, prettyOpts)
		for _, le := range r.LineErrors {
			fmt.Fprintf(os.Stderr, "  line %d: %v\n", le.Line, le.Err)
		}
		if r.FromCache {
			fmt.Fprintln(os.Stdout, "  (verified clean from cache)")
		}
	}
}

func renderCheckJSON(results []*driver.FileResult, fileSet *source.FileSet, opts driver.Options, jsonOpts reportfmt.JSONOpts) error {
	outputs := make([]reportfmt.FileOutput, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}
		out := reportfmt.BuildFileOutput(fileSet, r.Path, r.Bag, opts.Form, jsonOpts)
		if r.LoadErr != nil {
			out.Errors = append(out.Errors, r.LoadErr.Error())
		}
		for _, le := range r.LineErrors {
			out.Errors = append(out.Errors, fmt.Sprintf("line %d: %v", le.Line, le.Err))
		}
		out.FromCache = r.FromCache
		if jsonOpts.IncludeTimings {
			out.Timing = r.Timing
		}
		outputs = append(outputs, out)
	}
	return reportfmt.JSON(os.Stdout, outputs)
}
