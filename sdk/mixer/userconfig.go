package mixer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// UserConfig carries the caller's per-axis aliases for matrix inputs and
// outputs. The SDK only loads and stores it; it never interprets the
// aliases.
type UserConfig struct {
	SchemaVersion uint32         `json:"schema_version"`
	AInAliases    map[int]string `json:"ain_aliases"`
	DInAliases    map[int]string `json:"din_aliases"`
	OutAliases    map[int]string `json:"out_aliases"`
}

// DefaultUserConfig returns an empty alias configuration.
func DefaultUserConfig() UserConfig {
	return UserConfig{
		SchemaVersion: 1,
		AInAliases:    map[int]string{},
		DInAliases:    map[int]string{},
		OutAliases:    map[int]string{},
	}
}

// UserConfigPath returns the per-user configuration file location.
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".ftu-mixer", "config.json"), nil
}

// LoadUserConfig reads the alias configuration, returning the default
// when no file exists yet.
func LoadUserConfig() (UserConfig, error) {
	path, err := UserConfigPath()
	if err != nil {
		return DefaultUserConfig(), err
	}
	return loadUserConfigFrom(path)
}

func loadUserConfigFrom(path string) (UserConfig, error) {
	text, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultUserConfig(), nil
	}
	if err != nil {
		return DefaultUserConfig(), fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var cfg UserConfig
	if err := json.Unmarshal(text, &cfg); err != nil {
		return DefaultUserConfig(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the alias configuration, creating the directory if needed.
func (c UserConfig) Save() error {
	path, err := UserConfigPath()
	if err != nil {
		return err
	}
	return c.saveTo(path)
}

func (c UserConfig) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir %s: %w", filepath.Dir(path), err)
	}
	text, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, text, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
