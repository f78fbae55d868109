//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	provider string
	token    string
	apiURL   string
	name     string
	branch   string
	location string
	files    []string
}

// NewSettingsBuilder creates a new settings builder starting from the defaults.
func NewSettingsBuilder() *SettingsBuilder {
	b := &SettingsBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.setDefaults()
	return b
}

func (b *SettingsBuilder) setDefaults() {
	b.provider = entities.DefaultProvider
	b.token = ""
	b.apiURL = ""
	b.name = entities.DefaultRepositoryName
	b.branch = entities.DefaultBranch
	b.location = ""
	b.files = entities.DefaultSourcePaths()
}

// WithProvider sets the provider name.
func (b *SettingsBuilder) WithProvider(provider string) *SettingsBuilder {
	b.provider = provider
	return b
}

// WithToken sets the configured token.
func (b *SettingsBuilder) WithToken(token string) *SettingsBuilder {
	b.token = token
	return b
}

// WithAPIURL sets the API base URL.
func (b *SettingsBuilder) WithAPIURL(apiURL string) *SettingsBuilder {
	b.apiURL = apiURL
	return b
}

// WithRepositoryName sets the repository name.
func (b *SettingsBuilder) WithRepositoryName(name string) *SettingsBuilder {
	b.name = name
	return b
}

// WithBranch sets the target branch.
func (b *SettingsBuilder) WithBranch(branch string) *SettingsBuilder {
	b.branch = branch
	return b
}

// WithSourceLocation sets where files are read from.
func (b *SettingsBuilder) WithSourceLocation(location string) *SettingsBuilder {
	b.location = location
	return b
}

// WithFiles sets the file set.
func (b *SettingsBuilder) WithFiles(files ...string) *SettingsBuilder {
	b.files = files
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settings := entities.DefaultSettings()
	settings.Provider = b.provider
	settings.Token = b.token
	settings.APIURL = b.apiURL
	settings.Repository.Name = b.name
	settings.Repository.Branch = b.branch
	settings.Sources.Location = b.location
	settings.Sources.Files = append([]string(nil), b.files...)
	return settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.setDefaults()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		provider:    b.provider,
		token:       b.token,
		apiURL:      b.apiURL,
		name:        b.name,
		branch:      b.branch,
		location:    b.location,
		files:       append([]string(nil), b.files...),
	}
}
