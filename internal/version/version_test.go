package version

import (
	"strings"
	"testing"
)

func TestVersionSemver(t *testing.T) {
	if got := stripANSI(Version); got != "0.1.0-dev" {
		t.Fatalf("expected 0.1.0-dev, got %q", got)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	skip := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			skip = true
		case skip && r == 'm':
			skip = false
		case !skip:
			b.WriteRune(r)
		}
	}
	return b.String()
}
