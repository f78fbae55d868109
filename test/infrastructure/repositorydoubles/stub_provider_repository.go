//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
	"github.com/rios0rios0/selfreplicator/internal/domain/repositories"
)

// PagesCall records a single invocation of EnablePages.
type PagesCall struct {
	Repo   entities.Repository
	Branch string
}

// SpyProviderRepository implements repositories.ProviderRepository as a configurable spy.
type SpyProviderRepository struct {
	// --- identity ---
	ProviderName string

	// --- CreateRepository ---
	CreatedRepo  *entities.Repository
	CreateErr    error
	CreateInputs []entities.RepositoryInput

	// --- PublishFile ---
	PublishErrs   map[string]error // path -> error
	PublishInputs []entities.FileInput
	PublishRepos  []entities.Repository

	// --- EnablePages ---
	Site       *entities.Site
	PagesErr   error
	PagesCalls []PagesCall

	// spy: every call in order ("create", "publish:<path>", "pages")
	Calls []string
}

var _ repositories.ProviderRepository = (*SpyProviderRepository)(nil)

func (p *SpyProviderRepository) Name() string {
	if p.ProviderName == "" {
		return "spy"
	}
	return p.ProviderName
}

func (p *SpyProviderRepository) CreateRepository(
	_ context.Context, input entities.RepositoryInput,
) (*entities.Repository, error) {
	p.Calls = append(p.Calls, "create")
	p.CreateInputs = append(p.CreateInputs, input)
	if p.CreateErr != nil {
		return nil, p.CreateErr
	}
	if p.CreatedRepo != nil {
		repo := *p.CreatedRepo
		return &repo, nil
	}
	return &entities.Repository{Owner: "octocat", Name: input.Name}, nil
}

func (p *SpyProviderRepository) PublishFile(
	_ context.Context, repo entities.Repository, input entities.FileInput,
) error {
	p.Calls = append(p.Calls, "publish:"+input.Path)
	p.PublishInputs = append(p.PublishInputs, input)
	p.PublishRepos = append(p.PublishRepos, repo)
	if p.PublishErrs != nil {
		return p.PublishErrs[input.Path]
	}
	return nil
}

func (p *SpyProviderRepository) EnablePages(
	_ context.Context, repo entities.Repository, branch string,
) (*entities.Site, error) {
	p.Calls = append(p.Calls, "pages")
	p.PagesCalls = append(p.PagesCalls, PagesCall{Repo: repo, Branch: branch})
	if p.PagesErr != nil {
		return nil, p.PagesErr
	}
	if p.Site != nil {
		return p.Site, nil
	}
	return &entities.Site{URL: "https://" + repo.Owner + ".github.io/" + repo.Name}, nil
}

// DummyProviderRepository is a no-op implementation of repositories.ProviderRepository.
type DummyProviderRepository struct{}

var _ repositories.ProviderRepository = (*DummyProviderRepository)(nil)

func (d *DummyProviderRepository) Name() string { return "dummy" }

func (d *DummyProviderRepository) CreateRepository(
	_ context.Context, _ entities.RepositoryInput,
) (*entities.Repository, error) {
	return nil, nil //nolint:nilnil // dummy no-op
}

func (d *DummyProviderRepository) PublishFile(
	_ context.Context, _ entities.Repository, _ entities.FileInput,
) error {
	return nil
}

func (d *DummyProviderRepository) EnablePages(
	_ context.Context, _ entities.Repository, _ string,
) (*entities.Site, error) {
	return nil, nil //nolint:nilnil // dummy no-op
}
