package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"unifix/internal/reportfmt"
)

var compareCmd = &cobra.Command{
	Use:   "compare [flags] <string1> <string2>",
	Short: "Explain whether two strings are equivalent under normalization",
	Long:  `Print a character-by-character Unicode inspection of both strings (code point in hex and decimal, plus per-form normalization status), then the equivalence verdict under the selected form`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	a, b := args[0], args[1]

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	color, err := useColor(cmd)
	if err != nil {
		return err
	}
	inspectOpts := reportfmt.InspectOpts{Color: color}

	reportfmt.Inspect(os.Stdout, "a", a, inspectOpts)
	fmt.Fprintln(os.Stdout)
	reportfmt.Inspect(os.Stdout, "b", b, inspectOpts)
	fmt.Fprintln(os.Stdout)

	equivalent, err := reportfmt.Verdict(os.Stdout, a, b, opts.Form, inspectOpts)
	if err != nil {
		return fmt.Errorf("compare: %w", err)
	}
	if !equivalent {
		cmd.SilenceErrors = true
		return fmt.Errorf("") // вердикт уже напечатан, нужен только exit-код
	}
	return nil
}
