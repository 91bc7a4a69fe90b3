package norm

import (
	"fmt"
	"os"
	"strings"
)

// NormalizeFile rewrites inputPath line-by-line into outputPath and reports
// how many lines actually changed along with the total processed. Every input
// line produces exactly one output line, in the same order, empty lines
// included. Line terminators are preserved: splitting happens on '\n' only,
// so CRLF files keep their '\r' (normalization never touches it).
//
// A missing input is reported with the wrapped os.ReadFile error
// (errors.Is(err, fs.ErrNotExist)) and the output file is not created.
// Malformed UTF-8 fails the whole rewrite — частичный выходной файл не
// пишем никогда, вывод собирается в памяти и записывается одним куском.
func (n *Normalizer) NormalizeFile(inputPath, outputPath string) (changed, processed int, err error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return 0, 0, err
	}

	text := string(content)
	trailingNewline := strings.HasSuffix(text, "\n")
	if trailingNewline {
		text = text[:len(text)-1]
	}

	var lines []string
	if len(content) > 0 {
		lines = strings.Split(text, "\n")
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		normalized, nerr := n.Normalize(line)
		if nerr != nil {
			return 0, 0, fmt.Errorf("line %d: %w", i+1, nerr)
		}
		if normalized != line {
			changed++
		}
		out[i] = normalized
	}
	processed = len(lines)

	result := strings.Join(out, "\n")
	if trailingNewline {
		result += "\n"
	}
	if err := os.WriteFile(outputPath, []byte(result), 0o644); err != nil {
		return 0, 0, err
	}
	return changed, processed, nil
}
