package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config represents the pompatch configuration.
type Config struct {
	Root      string `json:"root"`
	ChildGlob string `json:"childGlob,omitempty"`
	Project   string `json:"project"`
	Format    string `json:"format"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Root:    "/build/main/plugins/pom.xml",
		Project: "Talend ESB Studio SE",
		Format:  "text",
	}
}

// ChildPattern returns the glob for child poms. When ChildGlob is unset it
// is derived from Root: every immediate subdirectory of Root's directory
// holding a file with Root's base name.
func (c Config) ChildPattern() string {
	if c.ChildGlob != "" {
		return c.ChildGlob
	}
	return filepath.Join(filepath.Dir(c.Root), "*", filepath.Base(c.Root))
}

// Validate checks that the effective config is usable.
func (c Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("root must not be empty")
	}
	if _, err := filepath.Match(c.ChildPattern(), ""); err != nil {
		return fmt.Errorf("invalid childGlob %q: %w", c.ChildPattern(), err)
	}
	switch c.Format {
	case "text", "json", "markdown":
	default:
		return fmt.Errorf("unsupported format %q (want text, json or markdown)", c.Format)
	}
	return nil
}

// ConfigDir returns the platform-appropriate config directory for pompatch.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pompatch"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "pompatch"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "pompatch"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "pompatch"), nil
	default:
		return filepath.Join(home, ".config", "pompatch"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// LoadFileWithDefaults returns the defaults with the config file's values
// merged over them, ignoring environment and flags.
func LoadFileWithDefaults() (Config, error) {
	cfg := Default()
	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg, err := LoadFileWithDefaults()
	if err != nil {
		return Config{}, err
	}
	mergeEnv(&cfg)
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Root != "" {
		dst.Root = src.Root
	}
	if src.ChildGlob != "" {
		dst.ChildGlob = src.ChildGlob
	}
	if src.Project != "" {
		dst.Project = src.Project
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("POMPATCH_ROOT"); v != "" {
		cfg.Root = v
	}
	if v := os.Getenv("POMPATCH_CHILD_GLOB"); v != "" {
		cfg.ChildGlob = v
	}
	if v := os.Getenv("POMPATCH_PROJECT"); v != "" {
		cfg.Project = v
	}
	if v := os.Getenv("POMPATCH_FORMAT"); v != "" {
		cfg.Format = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for key, v := range overrides {
		if v == "" {
			continue
		}
		if err := SetField(cfg, key, v); err != nil {
			return err
		}
	}
	return nil
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "root":
		cfg.Root = value
	case "childGlob":
		cfg.ChildGlob = value
	case "project":
		cfg.Project = value
	case "format":
		cfg.Format = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
