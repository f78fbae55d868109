package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
	"github.com/rios0rios0/selfreplicator/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/selfreplicator/internal/infrastructure/repositories"
)

// Replicate is the interface for the replicate command (one provisioning run).
type Replicate interface {
	Execute(
		ctx context.Context,
		settings *entities.Settings,
		opts ReplicateOptions,
	) (*entities.ReplicationResult, error)
}

// ReplicateOptions holds runtime options for a single run.
type ReplicateOptions struct {
	Token string // Explicit token (CLI flag); wins over every other source
}

// ReplicateCommand orchestrates a provisioning run:
// create repository -> publish every source file -> enable pages.
// Calls are made one at a time, each blocking until the remote side answers.
type ReplicateCommand struct {
	providerRegistry *infraRepos.ProviderRegistry
	sourceLocator    repositories.SourceLocator
	credentials      repositories.CredentialRepository
	reporter         repositories.ReporterRepository
}

// NewReplicateCommand creates a new ReplicateCommand.
func NewReplicateCommand(
	providerRegistry *infraRepos.ProviderRegistry,
	sourceLocator repositories.SourceLocator,
	credentials repositories.CredentialRepository,
	reporter repositories.ReporterRepository,
) *ReplicateCommand {
	return &ReplicateCommand{
		providerRegistry: providerRegistry,
		sourceLocator:    sourceLocator,
		credentials:      credentials,
		reporter:         reporter,
	}
}

// Execute runs one provisioning run. The returned error is non-nil only when the
// run was aborted (no credential, bad setup, or the repository could not be
// created); per-file and pages failures are reported and kept in the result.
func (it *ReplicateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ReplicateOptions,
) (*entities.ReplicationResult, error) {
	result := &entities.ReplicationResult{State: entities.StateCredentialCheck}

	token, err := it.resolveToken(ctx, settings, opts)
	if err != nil {
		return it.abort(result, fmt.Sprintf("Error: %v", err), err)
	}

	source, err := it.sourceLocator.Resolve(settings.Sources.Location)
	if err != nil {
		return it.abort(result, fmt.Sprintf("Error: %v", err), err)
	}

	provider, err := it.providerRegistry.Get(settings.Provider, token, settings.APIURL)
	if err != nil {
		return it.abort(result, fmt.Sprintf("Error: %v", err), err)
	}

	it.reporter.ShowProgress()
	defer it.reporter.Finish()

	result.State = entities.StateCreating
	repo, err := it.createRepository(ctx, provider, settings)
	if err != nil {
		msg := entities.CreationErrorMessage(entities.StatusCodeOf(err))
		it.reporter.Debug(err.Error())
		return it.abort(result, msg, fmt.Errorf("%s: %w", msg, err))
	}
	result.Repository = repo

	result.State = entities.StatePopulating
	it.populate(ctx, provider, source, *repo, settings, result)

	result.State = entities.StateEnablingPages
	it.enablePages(ctx, provider, *repo, settings.Repository.Branch, result)

	result.State = entities.StateDone
	logger.Debugf(
		"Replication of %s finished: %d files published, %d failed",
		repo.FullName(), len(result.Published), len(result.Failures),
	)
	return result, nil
}

// resolveToken reads the credential once per run: flag, config, then the credential repository.
func (it *ReplicateCommand) resolveToken(
	ctx context.Context,
	settings *entities.Settings,
	opts ReplicateOptions,
) (string, error) {
	for _, candidate := range []string{opts.Token, settings.Token} {
		if token := strings.TrimSpace(candidate); token != "" {
			return token, nil
		}
	}

	token, err := it.credentials.Credential(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", entities.ErrMissingCredential, err)
	}
	if strings.TrimSpace(token) == "" {
		return "", entities.ErrMissingCredential
	}
	return strings.TrimSpace(token), nil
}

func (it *ReplicateCommand) createRepository(
	ctx context.Context,
	provider repositories.ProviderRepository,
	settings *entities.Settings,
) (*entities.Repository, error) {
	it.reporter.Info(fmt.Sprintf("Creating repository %q on %s", settings.Repository.Name, provider.Name()))

	repo, err := provider.CreateRepository(ctx, entities.RepositoryInput{
		Name:        settings.Repository.Name,
		Description: settings.Repository.Description,
		Homepage:    settings.Repository.Homepage,
		Private:     false,
		HasIssues:   false,
		HasProjects: false,
		HasWiki:     false,
	})
	if err != nil {
		return nil, err
	}
	if repo == nil || repo.Owner == "" {
		return nil, &entities.ResponseError{Operation: "create repository", Err: entities.ErrMissingOwner}
	}
	if repo.Name == "" {
		repo.Name = settings.Repository.Name
	}

	it.reporter.Success(fmt.Sprintf("Repository %s created", repo.FullName()))
	return repo, nil
}

// populate fetches then publishes each source file in list order. A failing file
// is reported and the loop moves on to the next one.
func (it *ReplicateCommand) populate(
	ctx context.Context,
	provider repositories.ProviderRepository,
	source repositories.SourceRepository,
	repo entities.Repository,
	settings *entities.Settings,
	result *entities.ReplicationResult,
) {
	files := settings.Sources.Files
	progress := entities.NewProgress(len(files))

	it.reporter.Info(fmt.Sprintf("Copying %d files from %s", len(files), source.Location()))

	for i, path := range files {
		if err := it.publishFile(ctx, provider, source, repo, path, settings.Repository.Branch); err != nil {
			result.Failures = append(result.Failures, entities.FileFailure{Path: path, Err: err})
		} else {
			result.Published = append(result.Published, path)
		}

		progress.Advance(i + 1)
		result.Progress = progress.Ratio()
		it.reporter.SetProgress(progress.Ratio())
	}
}

func (it *ReplicateCommand) publishFile(
	ctx context.Context,
	provider repositories.ProviderRepository,
	source repositories.SourceRepository,
	repo entities.Repository,
	path, branch string,
) error {
	content, err := source.Fetch(ctx, path)
	if err != nil {
		it.reporter.Debug(err.Error())
		it.reporter.Error(fmt.Sprintf("failed to read file %s", path))
		return err
	}

	file := entities.SourceFile{Path: path, Content: content}
	it.reporter.Debug(fmt.Sprintf("uploading file %s", path))

	err = provider.PublishFile(ctx, repo, entities.FileInput{
		Path:    file.Path,
		Content: file.Content,
		Message: file.CommitMessage(),
		Branch:  branch,
	})
	if err != nil {
		it.reporter.Error(fmt.Sprintf("Failed to upload file %s. %s", path, entities.BodyOf(err)))
		return err
	}

	it.reporter.Success(fmt.Sprintf("File %s uploaded", path))
	return nil
}

func (it *ReplicateCommand) enablePages(
	ctx context.Context,
	provider repositories.ProviderRepository,
	repo entities.Repository,
	branch string,
	result *entities.ReplicationResult,
) {
	it.reporter.Debug("enabling github pages")

	site, err := provider.EnablePages(ctx, repo, branch)
	if err != nil {
		it.reporter.Debug(err.Error())
		it.reporter.Error("Failed to enable github pages")
		return
	}
	if site == nil || site.URL == "" {
		it.reporter.Error("Failed to enable github pages")
		return
	}

	result.SiteURL = site.URL
	it.reporter.ShowURL(site.URL)
}

func (it *ReplicateCommand) abort(
	result *entities.ReplicationResult,
	msg string,
	err error,
) (*entities.ReplicationResult, error) {
	it.reporter.Error(msg)
	result.State = entities.StateAborted
	return result, err
}
