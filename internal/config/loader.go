package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// FileBase is the config file name searched for, without extension.
const FileBase = "pingpong"

// Load loads the match configuration.
// Search order: customPath -> ~/.arcade/configs/pingpong.{yaml,toml} ->
// ./configs/pingpong.{yaml,toml} -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (MatchConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultMatchConfig(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := decode(data, customPath)
		if err != nil {
			return DefaultMatchConfig(), fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	var dirs []string
	if dir := userConfigDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "configs")

	// Unreadable or malformed search-path files are skipped
	for _, dir := range dirs {
		for _, ext := range []string{".yaml", ".toml"} {
			path := filepath.Join(dir, FileBase+ext)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if cfg, err := decode(data, path); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultMatchYAML)
	if err != nil {
		return DefaultMatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML configuration on top of the defaults.
// Unknown keys are rejected.
func Parse(data []byte) (MatchConfig, error) {
	cfg := DefaultMatchConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}
	return cfg, nil
}

// ParseTOML decodes a TOML configuration on top of the defaults.
// Unknown keys are rejected.
func ParseTOML(data []byte) (MatchConfig, error) {
	cfg := DefaultMatchConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return cfg, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg MatchConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

func decode(data []byte, path string) (MatchConfig, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}
	return Parse(data)
}

// userConfigDir returns ~/.arcade/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}
