//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
)

// RepositoryBuilder helps create test repositories with a fluent interface.
type RepositoryBuilder struct {
	*testkit.BaseBuilder
	owner   string
	name    string
	htmlURL string
}

// NewRepositoryBuilder creates a new repository builder with sensible defaults.
func NewRepositoryBuilder() *RepositoryBuilder {
	return &RepositoryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		owner:       "octocat",
		name:        entities.DefaultRepositoryName,
		htmlURL:     "https://github.com/octocat/" + entities.DefaultRepositoryName,
	}
}

// WithOwner sets the owner login.
func (b *RepositoryBuilder) WithOwner(owner string) *RepositoryBuilder {
	b.owner = owner
	return b
}

// WithName sets the repository name.
func (b *RepositoryBuilder) WithName(name string) *RepositoryBuilder {
	b.name = name
	return b
}

// WithHTMLURL sets the repository web URL.
func (b *RepositoryBuilder) WithHTMLURL(htmlURL string) *RepositoryBuilder {
	b.htmlURL = htmlURL
	return b
}

// Build creates the repository (satisfies testkit.Builder interface).
func (b *RepositoryBuilder) Build() interface{} {
	return b.BuildRepository()
}

// BuildRepository creates the repository with a concrete return type.
func (b *RepositoryBuilder) BuildRepository() *entities.Repository {
	return &entities.Repository{
		Owner:   b.owner,
		Name:    b.name,
		HTMLURL: b.htmlURL,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RepositoryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.owner = "octocat"
	b.name = entities.DefaultRepositoryName
	b.htmlURL = "https://github.com/octocat/" + entities.DefaultRepositoryName
	return b
}

// Clone creates a deep copy of the RepositoryBuilder.
func (b *RepositoryBuilder) Clone() testkit.Builder {
	return &RepositoryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		owner:       b.owner,
		name:        b.name,
		htmlURL:     b.htmlURL,
	}
}
