// Package config loads the devpad configuration file and supplies the
// defaults used when no file exists.
package config

//go:generate sh -c "cd ../.. && go run ./tools/schema-generator/"

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the contents of ~/.config/devpad/config.yml.
type Config struct {
	// ScanDirs are the root directories searched for projects, relative
	// to the home directory unless absolute.
	ScanDirs []string `yaml:"scan_dirs"`

	Vault     VaultConfig     `yaml:"vault,omitempty"`
	Assistant AssistantConfig `yaml:"assistant,omitempty"`

	// Opener is the command used for fire-and-forget opens (file
	// browser, obsidian:// links).
	Opener string `yaml:"opener,omitempty"`
}

// VaultConfig locates the Obsidian vault that holds per-project notes.
type VaultConfig struct {
	Name    string `yaml:"name"`              // vault name used in obsidian:// URIs
	Subpath string `yaml:"subpath,omitempty"` // folder inside the vault holding project notes
}

// AssistantConfig describes the assistant CLI launched on enter.
type AssistantConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"`
}

// Default returns the built-in configuration, matching the layout the
// tool was originally written against.
func Default() *Config {
	return &Config{
		ScanDirs: []string{"Documents/app", "Documents/playground"},
		Vault: VaultConfig{
			Name:    "NV",
			Subpath: "Personal/App",
		},
		Assistant: AssistantConfig{
			Command: "claude",
			Args:    []string{"--continue"},
		},
		Opener: "open",
	}
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "devpad", "config.yml")
}

// Load reads the config file at path. A missing file is not an error
// and returns the defaults as-is; a file that exists but cannot be
// parsed is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// An explicit empty list in the file would scan nothing; treat it
	// the same as an absent key.
	if len(cfg.ScanDirs) == 0 {
		cfg.ScanDirs = Default().ScanDirs
	}
	if cfg.Assistant.Command == "" {
		cfg.Assistant = Default().Assistant
	}
	if cfg.Opener == "" {
		cfg.Opener = Default().Opener
	}

	return cfg, nil
}

// VaultNotesDir returns the filesystem directory holding the vault's
// project notes, or "" when the home directory cannot be resolved.
// Obsidian's iCloud sync keeps vaults under a fixed library path.
func (c *Config) VaultNotesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home,
		"Library", "Mobile Documents", "iCloud~md~obsidian", "Documents",
		c.Vault.Name, filepath.FromSlash(c.Vault.Subpath))
}

// ExpandPath expands a leading ~/ and resolves relative paths against
// the home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		path = path[2:]
	}
	if filepath.IsAbs(path) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path)
}
