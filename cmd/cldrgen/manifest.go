package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const noCldrgenTomlMessage = "no cldrgen.toml found\nplease specify the inputs explicitly, e.g.:\n  cldrgen generate --main path/to/common/main --numbering-systems ... --supplemental ..."

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	CLDR   cldrConfig   `toml:"cldr"`
	Output outputConfig `toml:"output"`
}

type cldrConfig struct {
	Main             string `toml:"main"`
	NumberingSystems string `toml:"numbering_systems"`
	Supplemental     string `toml:"supplemental"`
	ISO639           string `toml:"iso639"`
}

type outputConfig struct {
	Path    string `toml:"path"`
	Backend string `toml:"backend"`
	Package string `toml:"package"`
}

func findCldrgenToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "cldrgen.toml")
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

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findCldrgenToml(startDir)
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
	if !meta.IsDefined("cldr") {
		return projectConfig{}, fmt.Errorf("%s: missing [cldr]", path)
	}
	if !meta.IsDefined("cldr", "main") || strings.TrimSpace(cfg.CLDR.Main) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [cldr].main", path)
	}
	if !meta.IsDefined("cldr", "numbering_systems") || strings.TrimSpace(cfg.CLDR.NumberingSystems) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [cldr].numbering_systems", path)
	}
	if !meta.IsDefined("cldr", "supplemental") || strings.TrimSpace(cfg.CLDR.Supplemental) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [cldr].supplemental", path)
	}
	return cfg, nil
}

// resolveManifestPath makes a manifest-relative path absolute against the
// manifest root. Absolute paths pass through.
func resolveManifestPath(manifest *projectManifest, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(manifest.Root, filepath.FromSlash(p))
}
