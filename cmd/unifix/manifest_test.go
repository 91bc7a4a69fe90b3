package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "unifix.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestFindUnifixTomlWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, "")

	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got, ok, err := findUnifixToml(nested)
	if err != nil {
		t.Fatalf("findUnifixToml returned error: %v", err)
	}
	if !ok || got != want {
		t.Fatalf("expected %s, got %s (ok=%v)", want, got, ok)
	}
}

func TestLoadProjectManifestAbsenceIsNotAnError(t *testing.T) {
	// t.TempDir живёт под /tmp: подъём до корня манифеста не найдёт,
	// если только кто-то не положил unifix.toml выше. Для теста это ок.
	manifest, found, err := loadProjectManifest(t.TempDir())
	if err != nil {
		t.Fatalf("missing manifest must not be an error: %v", err)
	}
	if found && manifest == nil {
		t.Fatal("found manifest must not be nil")
	}
}

func TestLoadProjectConfigParsesCheckSection(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[check]
form = "nfc"
extensions = [".txt", ".rst"]
max_issues = 25
`)

	cfg, err := loadProjectConfig(path)
	if err != nil {
		t.Fatalf("loadProjectConfig returned error: %v", err)
	}
	if cfg.Check.Form != "nfc" {
		t.Errorf("expected form nfc, got %q", cfg.Check.Form)
	}
	if !reflect.DeepEqual(cfg.Check.Extensions, []string{".txt", ".rst"}) {
		t.Errorf("unexpected extensions: %#v", cfg.Check.Extensions)
	}
	if cfg.Check.MaxIssues != 25 {
		t.Errorf("expected max_issues 25, got %d", cfg.Check.MaxIssues)
	}
}

func TestLoadProjectConfigRejectsUnknownForm(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[check]
form = "nfz"
`)

	if _, err := loadProjectConfig(path); err == nil {
		t.Fatal("expected error for unknown normalization form")
	}
}

func TestLoadProjectConfigEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "")

	cfg, err := loadProjectConfig(path)
	if err != nil {
		t.Fatalf("empty manifest must parse: %v", err)
	}
	if cfg.Check.Form != "" || cfg.Check.MaxIssues != 0 {
		t.Fatalf("empty manifest must leave defaults, got %+v", cfg)
	}
}
