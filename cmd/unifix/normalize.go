package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"unifix/internal/driver"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [flags] <input> <output>",
	Short: "Rewrite a text file into normalized form",
	Long:  `Read the input file line-by-line, write each line's normalized form to the output file, and report how many lines changed. Every input line produces exactly one output line, in the same order.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runNormalize,
}

func runNormalize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	inputPath := args[0]
	outputPath := args[1]

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	result, err := driver.NormalizePath(cmd.Context(), inputPath, outputPath, opts)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("normalize: input file not found: %s", inputPath)
		}
		return fmt.Errorf("normalize: %w", err)
	}

	if !quiet {
		fmt.Fprintf(os.Stdout, "normalized %s -> %s: %d of %d line(s) changed (%s)\n",
			inputPath, outputPath, result.Changed, result.Processed, opts.Form)
	}

	if result.Timing != nil {
		fmt.Fprint(os.Stderr, result.Timing.Summary())
	}
	return nil
}
