//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/selfreplicator/internal/domain/commands"
	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
)

// StubListCommand is a stub implementation of commands.List.
type StubListCommand struct {
	ExecuteCallCount int
	Listing          *entities.SourceListing
	ExecuteErr       error
	LastSettings     *entities.Settings
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) (*entities.SourceListing, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if s.Listing == nil {
		return &entities.SourceListing{Location: "stub"}, nil
	}
	return s.Listing, nil
}
