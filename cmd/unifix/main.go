package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"unifix/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "unifix",
	Short: "Unicode normalization checker and fixer",
	Long:  `unifix inspects UTF-8 text files line-by-line for characters that are not in a canonical Unicode normalization form, rewrites files into that form, and explains character-by-character why two strings are or are not equivalent under normalization`,
}

// newRootCmd registers subcommands and persistent flags on the root command.
func newRootCmd() *cobra.Command {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("form", "", "normalization form (nfc|nfd|nfkc|nfkd, default nfkc)")
	rootCmd.PersistentFlags().Int("max-issues", 0, "maximum number of issues collected per file (default 100)")

	return rootCmd
}

// main executes the root command. If command execution returns an error, the
// process exits with status code 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag against the terminal.
func useColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)), nil
}
