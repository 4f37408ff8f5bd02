package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"

	DefaultOutput = "text"
	DefaultWidth  = 100
)

// Config is the user configuration stored at ~/.symcheck/config.
type Config struct {
	Output   string `yaml:"output,omitempty"`
	Color    string `yaml:"color,omitempty"`
	Width    int    `yaml:"width,omitempty"`
	Icons    bool   `yaml:"icons,omitempty"`
	Template string `yaml:"template,omitempty"`
	ExitCode bool   `yaml:"exit-code,omitempty"`
	// configPath is the file path used for reading and writing this config.
	configPath string `yaml:"-"`
}

// Path returns the file this config was read from or will be written to.
func (c *Config) Path() string {
	return c.configPath
}

// OutputOrDefault returns the configured output format or "text".
func (c *Config) OutputOrDefault() string {
	if c.Output == "" {
		return DefaultOutput
	}
	return c.Output
}

// ColorOrDefault returns the configured colour mode or "auto".
func (c *Config) ColorOrDefault() string {
	if c.Color == "" {
		return ColorAuto
	}
	return c.Color
}

// WidthOrDefault returns the configured panel width or DefaultWidth.
func (c *Config) WidthOrDefault() int {
	if c.Width <= 0 {
		return DefaultWidth
	}
	return c.Width
}

// Keys lists the settable keys.
func Keys() []string {
	keys := []string{"output", "color", "width", "icons", "template", "exit-code"}
	sort.Strings(keys)
	return keys
}

// ValidOutputs are the accepted values of the output key.
var ValidOutputs = []string{"text", "json", "msgpack", "avro", "template"}

// Set assigns value to key after validating it.
func (c *Config) Set(key, value string) error {
	switch key {
	case "output":
		if !contains(ValidOutputs, value) {
			return fmt.Errorf("output must be one of: %s", strings.Join(ValidOutputs, ", "))
		}
		c.Output = value
	case "color":
		if err := ValidateColor(value); err != nil {
			return err
		}
		c.Color = value
	case "width":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("width must be a positive integer, got %q", value)
		}
		c.Width = n
	case "icons":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("icons must be true or false: %w", err)
		}
		c.Icons = b
	case "template":
		c.Template = value
	case "exit-code":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("exit-code must be true or false: %w", err)
		}
		c.ExitCode = b
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// ValidateColor checks a colour mode.
func ValidateColor(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("color must be one of: %s, %s, %s", ColorAuto, ColorAlways, ColorNever)
}

// Encode writes c as YAML.
func (c *Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

func (c *Config) Write() error {
	configPath := c.configPath
	if configPath == "" {
		var err error
		configPath, err = getDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, "config.*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if err := c.Encode(tmpFile); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp config file: %w", err)
	}
	c.configPath = configPath
	return nil
}

func ReadConfig(cfgPath string) (c Config, err error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.OpenFile(resolvedPath, os.O_RDONLY, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	err = decoder.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if c.Color != "" {
		if err := ValidateColor(c.Color); err != nil {
			return Config{}, fmt.Errorf("invalid config: %w", err)
		}
	}
	if c.Output != "" && !contains(ValidOutputs, c.Output) {
		return Config{}, fmt.Errorf("invalid config: unknown output %q", c.Output)
	}
	c.configPath = resolvedPath
	return c, nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		return getDefaultConfigPath()
	}
	expanded, err := homedir.Expand(cfgPath)
	if err != nil {
		return "", fmt.Errorf("expand config path: %w", err)
	}
	if !fileExists(expanded) {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return expanded, nil
}

func getDefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".symcheck", "config"), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
