package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".apodex"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .apodex configuration file.
// Every field is optional; the zero value leaves the corresponding
// Config default untouched.
type File struct {
	// Model overrides the completion model name.
	Model string `yaml:"model,omitempty"`

	// Temperature overrides the completion sampling temperature.
	// Pointer so that an explicit 0 is distinguishable from "unset".
	Temperature *float64 `yaml:"temperature,omitempty"`

	// MaxTokens overrides the completion token cap.
	MaxTokens int `yaml:"maxTokens,omitempty"`

	// OutputDir overrides the report output directory.
	OutputDir string `yaml:"outputDir,omitempty"`

	// Format selects the report format: "text", "markdown", or "json".
	Format string `yaml:"format,omitempty"`

	// APODEndpoint overrides the APOD API URL. Intended for testing
	// against a local fake; leave unset in normal use.
	APODEndpoint string `yaml:"apodEndpoint,omitempty"`

	// GroqEndpoint overrides the completion API URL. Intended for
	// testing against a local fake; leave unset in normal use.
	GroqEndpoint string `yaml:"groqEndpoint,omitempty"`
}

// Apply copies the file's set fields onto the Config.
// CLI flags are applied after this, so flags win over the file.
func (f *File) Apply(cfg *Config) {
	if f.Model != "" {
		cfg.Model = f.Model
	}
	if f.Temperature != nil {
		cfg.Temperature = *f.Temperature
	}
	if f.MaxTokens > 0 {
		cfg.MaxTokens = f.MaxTokens
	}
	if f.OutputDir != "" {
		cfg.OutputDir = f.OutputDir
	}
	if f.APODEndpoint != "" {
		cfg.APODEndpoint = f.APODEndpoint
	}
	if f.GroqEndpoint != "" {
		cfg.GroqEndpoint = f.GroqEndpoint
	}
	switch f.Format {
	case "markdown":
		cfg.MarkdownReport = true
	case "json":
		cfg.JSONReport = true
	}
}

// LoadConfigFile loads configuration from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound so callers
// can decide whether that is fatal (explicit --config) or not.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	return &f, nil
}

// FindConfigFile searches for the configuration file in order:
// 1. The explicit path, if given
// 2. .apodex in the current directory
// 3. The XDG config directory (~/.config/apodex/.apodex on Linux)
// 4. .apodex in the user's home directory
//
// Returns the path if found, or empty string if not.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// LoadDotEnv seeds the process environment from a .env file in the
// working directory if one exists. Missing files are not an error;
// the environment may already carry the keys.
func LoadDotEnv() {
	_ = godotenv.Load() //nolint:errcheck // A missing .env file is the normal case
}
