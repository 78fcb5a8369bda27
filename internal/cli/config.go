package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	maxWalkDepth = 25
)

// Config represents the relcheck configuration from relcheck.yaml.
type Config struct {
	// Format is the default output format when --format is not given.
	Format string `mapstructure:"format"`

	// Database configuration
	Database DatabaseConfig `mapstructure:"database"`

	// Presets are the relations offered by the menu command, in order.
	Presets []Preset `mapstructure:"presets"`
}

// DatabaseConfig holds run history settings.
type DatabaseConfig struct {
	// Path is the SQLite file. Empty disables run history.
	Path string `mapstructure:"path"`
}

// Preset is one menu entry.
type Preset struct {
	Name string `mapstructure:"name"`
	Path string `mapstructure:"path"`
}

// DefaultPresets returns the four sample relations, looked up in the
// working directory.
func DefaultPresets() []Preset {
	presets := make([]Preset, 4)
	for i := range presets {
		presets[i] = Preset{
			Name: fmt.Sprintf("Relation %d", i+1),
			Path: fmt.Sprintf("Relation%d.txt", i+1),
		}
	}
	return presets
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Format:  "text",
		Presets: DefaultPresets(),
	}
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered. Relative preset paths in a config file are
// resolved against the file's directory.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	// 1. Set defaults first (lowest precedence)
	setDefaults(v)

	// 2. Set up environment variable binding
	v.SetEnvPrefix("RELCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 3. Find and load config file
	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	// 4. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	if len(cfg.Presets) == 0 {
		cfg.Presets = DefaultPresets()
	} else if configPath != "" {
		base := filepath.Dir(configPath)
		for i, p := range cfg.Presets {
			if p.Path != "" && !filepath.IsAbs(p.Path) {
				cfg.Presets[i].Path = filepath.Join(base, p.Path)
			}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, configPath, err
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", "text")
	v.SetDefault("database.path", "")
}

func (c *Config) validate() error {
	if !isValidFormat(c.Format) {
		return fmt.Errorf("config: invalid format %q: must be one of %v", c.Format, ValidFormats)
	}
	for i, p := range c.Presets {
		if p.Path == "" {
			return fmt.Errorf("config: presets[%d]: path is required", i)
		}
	}
	return nil
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for relcheck.yaml or relcheck.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	// Auto-discovery: walk up to .git or maxWalkDepth
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for i := 0; i < maxWalkDepth; i++ {
		// Try relcheck.yaml then relcheck.yml
		for _, name := range []string{"relcheck.yaml", "relcheck.yml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		// Check for repo boundary (.git file or directory)
		gitPath := filepath.Join(dir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break // Stop at repo root
		}

		// Move up
		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached filesystem root
		}
		dir = parent
	}

	return "", nil // No config found, use defaults
}
