// Copyright (c) 2026 Avendesora Team
// Avendesora - deterministic password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads avendesora settings from defaults, config files,
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// AVENDESORA_HASH_ALGORITHM.
const EnvPrefix = "avendesora"

// Config holds every setting.
type Config struct {
	AccountsFile   string `mapstructure:"accounts_file" yaml:"accounts_file"`
	ArchiveFile    string `mapstructure:"archive_file" yaml:"archive_file"`
	HashAlgorithm  string `mapstructure:"hash_algorithm" yaml:"hash_algorithm"`
	DefaultField   string `mapstructure:"default_field" yaml:"default_field"`
	Output         string `mapstructure:"output" yaml:"output"`
	ClipboardClear int    `mapstructure:"clipboard_clear" yaml:"clipboard_clear"` // seconds, 0 keeps the value
	Workers        int    `mapstructure:"workers" yaml:"workers"`
	Language       string `mapstructure:"language" yaml:"language"`
	LogLevel       string `mapstructure:"log_level" yaml:"log_level"`
}

// Defaults returns the built-in settings keyed the way viper expects them.
func Defaults() map[string]any {
	dataDir := "."
	if dir, err := os.UserConfigDir(); err == nil {
		dataDir = filepath.Join(dir, "avendesora")
	}
	return map[string]any{
		"accounts_file":   filepath.Join(dataDir, "accounts.yaml"),
		"archive_file":    filepath.Join(dataDir, "archive.zst"),
		"hash_algorithm":  "sha512",
		"default_field":   "passcode",
		"output":          "stdout",
		"clipboard_clear": 0,
		"workers":         0,
		"language":        "en",
		"log_level":       "warn",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Avendesora")
		default: // Linux, macOS, etc.
			configDir = "/etc/avendesora"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "avendesora")
	}

	return filepath.Join(configDir, "avendesora.yaml"), nil
}

// LoadConfig layers defaults, the first avendesora.yaml found (explicit
// path, user dir, system dir, current dir), AVENDESORA_* environment
// variables and the flags of cmd. A missing config file is reported as
// viper.ConfigFileNotFoundError alongside a fully populated result.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("avendesora")
	v.SetConfigType("yaml")
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := bindChangedFlags(v, cmd); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, notFound
}

// bindChangedFlags lets flags the user actually set override everything
// else. Flag names use dashes; config keys use underscores.
func bindChangedFlags(v *viper.Viper, cmd *cobra.Command) error {
	var bindErr error
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags()} {
		fs.VisitAll(func(f *pflag.Flag) {
			if bindErr != nil || !f.Changed {
				return
			}
			bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}
	return bindErr
}

// WriteConfigFile writes c as YAML to the user or system config path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigFileTo(c, path)
}

// WriteConfigFileTo writes c as YAML to path, creating its directory.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
