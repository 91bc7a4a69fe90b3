package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckErrorReportSkipsUsageText(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "broken.txt")
	if err := os.WriteFile(path, []byte("ok\n\xffbroken\n"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	root := newRootCmd()
	var buf strings.Builder
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs([]string{"check", path})

	if err := root.Execute(); err == nil {
		t.Fatal("expected error for a file with an unverifiable line")
	}
	// ошибки по строкам уже напечатаны, подсказка по флагам тут лишняя
	if strings.Contains(buf.String(), "Usage:") {
		t.Fatalf("usage text must not follow the error report:\n%s", buf.String())
	}
}
