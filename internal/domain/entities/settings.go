package entities

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultProvider       = "github"
	DefaultRepositoryName = "self-replicator"
	DefaultDescription    = "This repository is self-replicated"
	DefaultHomepage       = "https://github.com"
	DefaultBranch         = "master"
)

// Settings is the top-level configuration for selfreplicator.
type Settings struct {
	Provider   string             `yaml:"provider"`
	Token      string             `yaml:"token"`   // Inline, ${ENV_VAR}, or file path
	APIURL     string             `yaml:"api_url"` // Empty means the public API
	Repository RepositorySettings `yaml:"repository"`
	Sources    SourceSettings     `yaml:"sources"`
}

// RepositorySettings describes the repository created on every run.
type RepositorySettings struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Homepage    string `yaml:"homepage"`
	Branch      string `yaml:"branch"`
}

// SourceSettings describes where the fixed file set is read from.
type SourceSettings struct {
	Location string   `yaml:"location"` // "" embedded bundle, directory, or http(s) base URL
	Files    []string `yaml:"files"`
}

// configFileNames are tried in order inside every config directory.
var configFileNames = []string{ //nolint:gochecknoglobals // fixed lookup order
	".selfreplicator.yaml",
	".selfreplicator.yml",
	"selfreplicator.yaml",
	"selfreplicator.yml",
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Provider: DefaultProvider,
		Repository: RepositorySettings{
			Name:        DefaultRepositoryName,
			Description: DefaultDescription,
			Homepage:    DefaultHomepage,
			Branch:      DefaultBranch,
		},
		Sources: SourceSettings{
			Files: DefaultSourcePaths(),
		},
	}
}

// NewSettings reads and parses a configuration file on top of the defaults,
// expanding environment variables and resolving token file paths.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Token = ResolveToken(settings.Token)

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile returns the first config file in the working directory or,
// failing that, in the user config directory ($XDG_CONFIG_HOME/selfreplicator
// or ~/.config/selfreplicator on Linux).
func FindConfigFile() (string, error) {
	dirs := []string{"."}
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, "selfreplicator"))
	}

	for _, dir := range dirs {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("config file not found in %s", strings.Join(dirs, ", "))
}

// ResolveToken expands ${VAR} references and reads the token from a file when
// the expanded value names one. Unset variables expand to nothing.
func ResolveToken(raw string) string {
	resolved := os.Expand(raw, func(name string) string {
		val, ok := os.LookupEnv(name)
		if !ok || val == "" {
			logger.Warnf("Environment variable %q is not set", name)
		}
		return val
	})
	if resolved == "" {
		return ""
	}

	info, err := os.Stat(resolved)
	if err != nil || info.IsDir() {
		return resolved
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		logger.Warnf("Failed to read token file %q: %v", resolved, err)
		return resolved
	}
	logger.Debugf("Read token from file %q", resolved)
	return strings.TrimSpace(string(data))
}

// Validate checks for required configuration values.
func (s *Settings) Validate() error {
	if s.Provider == "" {
		return errors.New("provider is required")
	}
	if strings.TrimSpace(s.Repository.Name) == "" {
		return errors.New("repository.name is required")
	}
	if strings.TrimSpace(s.Repository.Branch) == "" {
		return errors.New("repository.branch is required")
	}
	if len(s.Sources.Files) == 0 {
		return errors.New("sources.files must have at least one entry")
	}
	for i, f := range s.Sources.Files {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("sources.files[%d] is empty", i)
		}
	}
	if s.APIURL != "" {
		u, err := url.Parse(s.APIURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("api_url %q is not an absolute URL", s.APIURL)
		}
	}
	return nil
}
