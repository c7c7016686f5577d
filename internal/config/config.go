package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Config represents the aidiff configuration.
type Config struct {
	Context  int      `json:"context"`
	MaxLines int      `json:"maxLines"`
	WordDiff bool     `json:"wordDiff"`
	NoPrompt bool     `json:"noPrompt"`
	NoRedact bool     `json:"noRedact"`
	Exclude  []string `json:"exclude,omitempty"`
	APIURL   string   `json:"apiUrl,omitempty"`
	Token    string   `json:"-"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Context:  3,
		MaxLines: 5000,
	}
}

// ConfigDir returns the platform-appropriate config directory for aidiff.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "aidiff"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "aidiff"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "aidiff"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "aidiff"), nil
	default:
		return filepath.Join(home, ".config", "aidiff"), nil
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

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
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

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only set values appear).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Context > 0 {
		dst.Context = src.Context
	}
	if src.MaxLines != 0 {
		dst.MaxLines = src.MaxLines
	}
	if len(src.Exclude) > 0 {
		dst.Exclude = src.Exclude
	}
	if src.APIURL != "" {
		dst.APIURL = src.APIURL
	}
	// Bool zero values are indistinguishable from unset in a simple JSON
	// merge; OR keeps a file-set true without clobbering the default.
	dst.WordDiff = src.WordDiff || dst.WordDiff
	dst.NoPrompt = src.NoPrompt || dst.NoPrompt
	dst.NoRedact = src.NoRedact || dst.NoRedact
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.Token = v
	} else if v := os.Getenv("GH_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("GITHUB_API_URL"); v != "" {
		cfg.APIURL = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["context"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Context = n
		}
	}
	if v, ok := overrides["maxLines"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxLines = n
		}
	}
	if v, ok := overrides["token"]; ok && v != "" {
		cfg.Token = v
	}
	if v, ok := overrides["wordDiff"]; ok && v == "true" {
		cfg.WordDiff = true
	}
	if v, ok := overrides["noPrompt"]; ok && v == "true" {
		cfg.NoPrompt = true
	}
	if v, ok := overrides["noRedact"]; ok && v == "true" {
		cfg.NoRedact = true
	}
	if v, ok := overrides["exclude"]; ok && v != "" {
		cfg.Exclude = append(cfg.Exclude, splitComma(v)...)
	}
}

func splitComma(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

// SetField sets a single config field by key name. Returns an error if the
// key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "context":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("context must be an integer: %w", err)
		}
		cfg.Context = n
	case "maxLines":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxLines must be an integer: %w", err)
		}
		cfg.MaxLines = n
	case "wordDiff":
		cfg.WordDiff = value == "true"
	case "noPrompt":
		cfg.NoPrompt = value == "true"
	case "noRedact":
		cfg.NoRedact = value == "true"
	case "apiUrl":
		cfg.APIURL = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
