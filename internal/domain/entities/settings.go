package entities

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSearchURL   = "https://search.cocoapods.org/api/v1/pods.flat.hash.json"
	DefaultPodBinary   = "pod"
	DefaultTimeout     = 30 * time.Second
	DefaultConcurrency = 1
)

// OutputFormat selects how the report is printed.
type OutputFormat string

const (
	OutputText     OutputFormat = "text"
	OutputJSON     OutputFormat = "json"
	OutputMarkdown OutputFormat = "markdown"
)

// OutputFormats lists every supported output format.
func OutputFormats() []OutputFormat {
	return []OutputFormat{OutputText, OutputJSON, OutputMarkdown}
}

// Settings is the runtime configuration of podreport.
type Settings struct {
	SearchURL   string        `yaml:"search_url"`  // CocoaPods search endpoint
	PodBinary   string        `yaml:"pod_binary"`  // name or path of the pod executable
	Timeout     time.Duration `yaml:"timeout"`     // per-request timeout for the search service
	Concurrency int           `yaml:"concurrency"` // pods resolved in parallel
	Output      OutputFormat  `yaml:"output"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	return &Settings{
		SearchURL:   DefaultSearchURL,
		PodBinary:   DefaultPodBinary,
		Timeout:     DefaultTimeout,
		Concurrency: DefaultConcurrency,
		Output:      OutputText,
	}
}

// NewSettings reads a configuration file on top of the defaults, expanding
// environment variable references in string values.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.SearchURL = expandEnv(settings.SearchURL)
	settings.PodBinary = expandEnv(settings.PodBinary)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".podreport.yaml",
		".podreport.yml",
		"podreport.yaml",
		"podreport.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Validate checks the settings for values the report cannot run with.
func (s *Settings) Validate() error {
	parsed, err := url.Parse(s.SearchURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("search_url must be an absolute http(s) URL, got %q", s.SearchURL)
	}
	if s.PodBinary == "" {
		return errors.New("pod_binary is required")
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", s.Timeout)
	}
	if s.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", s.Concurrency)
	}
	if !slices.Contains(OutputFormats(), s.Output) {
		return fmt.Errorf("unsupported output format %q (expected one of %v)", s.Output, OutputFormats())
	}
	return nil
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
