package commands

import (
	"context"

	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
	"github.com/rios0rios0/selfreplicator/internal/domain/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, settings *entities.Settings) (*entities.SourceListing, error)
}

// ListCommand reads the fixed file set without touching the hosting provider.
type ListCommand struct {
	sourceLocator repositories.SourceLocator
}

// NewListCommand creates a new ListCommand.
func NewListCommand(sourceLocator repositories.SourceLocator) *ListCommand {
	return &ListCommand{sourceLocator: sourceLocator}
}

// Execute fetches every configured file. Files that cannot be read end up in
// the listing's failures; only an unusable source location is an error.
func (it *ListCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) (*entities.SourceListing, error) {
	source, err := it.sourceLocator.Resolve(settings.Sources.Location)
	if err != nil {
		return nil, err
	}

	listing := &entities.SourceListing{Location: source.Location()}
	for _, path := range settings.Sources.Files {
		content, fetchErr := source.Fetch(ctx, path)
		if fetchErr != nil {
			listing.Failures = append(listing.Failures, entities.FileFailure{Path: path, Err: fetchErr})
			continue
		}
		listing.Files = append(listing.Files, entities.SourceFile{Path: path, Content: content})
	}
	return listing, nil
}
