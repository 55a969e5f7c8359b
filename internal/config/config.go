package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/cplate-dev/cplate/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys. Each is also read from the environment as CPLATE_<KEY>.
const (
	KeyDir       = "dir"
	KeyAssumeYes = "assume_yes"
	KeyColor     = "color"
)

// Keys returns every supported setting key in sorted order.
func Keys() []string {
	return []string{KeyAssumeYes, KeyColor, KeyDir}
}

// Dir returns the path to the config directory (~/.cplate/). CPLATE_HOME
// overrides it.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("home")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.cplate/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load resets Viper and configures it to read from the config file and
// environment. A missing config file is not an error; an unreadable or
// malformed one is.
func Load() error {
	viper.Reset()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	viper.SetDefault(KeyColor, "auto")

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value by key.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// All returns every known setting and its effective value, sorted by key.
func All() []Setting {
	settings := viper.AllSettings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Setting, 0, len(keys))
	for _, k := range keys {
		out = append(out, Setting{Key: k, Value: viper.GetString(k)})
	}
	return out
}

// Setting is one key/value pair as shown by "config list".
type Setting struct {
	Key   string
	Value string
}

// Set validates and writes a config key-value pair to the config file. Only
// the file's own keys plus key are written; environment overrides and
// defaults stay out of the file.
func Set(key, value string) error {
	typed, err := typedValue(key, value)
	if err != nil {
		return err
	}

	configFile := FilePath()

	candidate, err := readSettings(configFile)
	if err != nil {
		return err
	}
	if candidate == nil {
		candidate = map[string]any{}
	}
	candidate[key] = typed

	result, err := Validate(candidate)
	if err != nil {
		return err
	}
	if !result.Valid {
		return &InvalidError{Source: configFile, Issues: result.Issues}
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	data, err := yaml.Marshal(candidate)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("writing config file %s: %w", configFile, err)
	}

	viper.Set(key, typed)
	return nil
}

// readSettings decodes the YAML settings file at path. A missing file yields
// a nil map.
func readSettings(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var settings map[string]any
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing YAML in %s: %w", path, err)
	}
	return settings, nil
}

// typedValue converts the command-line string for key into the type the
// schema expects.
func typedValue(key, value string) (any, error) {
	if key != KeyAssumeYes {
		return value, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("%s must be true or false, got %q", key, value)
	}
	return b, nil
}

// BindFlag makes flag the source for key whenever the user sets it on the
// command line. Call it after Load, which resets all bindings.
func BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("binding %s: flag not defined", key)
	}
	if err := viper.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("binding %s to --%s: %w", key, flag.Name, err)
	}
	return nil
}
