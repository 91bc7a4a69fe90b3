package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"unifix/internal/driver"
	"unifix/internal/norm"
)

// projectManifest is an optional unifix.toml discovered upward from the
// working directory. Flags always override manifest values.
type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Check checkConfig `toml:"check"`
}

type checkConfig struct {
	Form       string   `toml:"form"`
	Extensions []string `toml:"extensions"`
	MaxIssues  int      `toml:"max_issues"`
}

func findUnifixToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "unifix.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadProjectManifest ищет и читает unifix.toml; отсутствие файла — не ошибка.
func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findUnifixToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	// Все поля опциональны, но форму проверяем сразу, чтобы ошибка
	// указывала на манифест, а не на флаг.
	if meta.IsDefined("check", "form") {
		if _, err := norm.ParseForm(cfg.Check.Form); err != nil {
			return projectConfig{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	return cfg, nil
}

// resolveOptions merges manifest values and persistent flags into driver
// options. Приоритет: флаг > манифест > дефолт.
func resolveOptions(cmd *cobra.Command) (driver.Options, error) {
	var opts driver.Options

	manifest, found, err := loadProjectManifest(".")
	if err != nil {
		return opts, err
	}
	if found {
		if manifest.Config.Check.Form != "" {
			form, err := norm.ParseForm(manifest.Config.Check.Form)
			if err != nil {
				return opts, err
			}
			opts.Form = form
		}
		opts.Extensions = manifest.Config.Check.Extensions
		opts.MaxIssues = manifest.Config.Check.MaxIssues
	}

	formFlag, err := cmd.Root().PersistentFlags().GetString("form")
	if err != nil {
		return opts, err
	}
	if formFlag != "" {
		form, err := norm.ParseForm(formFlag)
		if err != nil {
			return opts, err
		}
		opts.Form = form
	}

	maxIssues, err := cmd.Root().PersistentFlags().GetInt("max-issues")
	if err != nil {
		return opts, err
	}
	if maxIssues > 0 {
		opts.MaxIssues = maxIssues
	}

	opts.EnableTimings, err = cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return opts, err
	}
	return opts, nil
}
