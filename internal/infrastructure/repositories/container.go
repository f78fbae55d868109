package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/selfreplicator/internal/domain/repositories"
	credRepo "github.com/rios0rios0/selfreplicator/internal/infrastructure/repositories/credentials"
	ghRepo "github.com/rios0rios0/selfreplicator/internal/infrastructure/repositories/github"
	reportRepo "github.com/rios0rios0/selfreplicator/internal/infrastructure/repositories/reporters"
	srcRepo "github.com/rios0rios0/selfreplicator/internal/infrastructure/repositories/sources"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register provider registry with all provider factories
	if err := container.Provide(func() *ProviderRegistry {
		reg := NewProviderRegistry()
		reg.Register("github", ghRepo.NewGitHubProviderRepository)
		return reg
	}); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func() domainRepos.SourceLocator {
		return srcRepo.NewSourceResolver()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.CredentialRepository {
		return credRepo.NewPromptCredentialRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.ReporterRepository {
		return reportRepo.NewTerminalReporterRepository()
	}); err != nil {
		return err
	}

	return nil
}
