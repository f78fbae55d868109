package repositories

import (
	"context"

	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
)

// ProviderRepository abstracts a Git hosting service able to create a repository,
// commit files into it through a contents API and publish it as a static site.
// Every call blocks until the remote service answers.
type ProviderRepository interface {
	// Name returns the provider identifier (e.g. "github").
	Name() string

	// CreateRepository creates a repository owned by the token's account.
	// Only a "created" answer counts as success; anything else is a *entities.ResponseError.
	CreateRepository(ctx context.Context, input entities.RepositoryInput) (*entities.Repository, error)

	// PublishFile creates a new path in the repository holding the given content.
	PublishFile(ctx context.Context, repo entities.Repository, input entities.FileInput) error

	// EnablePages turns on static-site hosting for the given branch.
	EnablePages(ctx context.Context, repo entities.Repository, branch string) (*entities.Site, error)
}
