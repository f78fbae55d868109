//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/selfreplicator/internal/domain/commands"
	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
)

// StubReplicateCommand is a stub implementation of commands.Replicate.
type StubReplicateCommand struct {
	ExecuteCallCount int
	ExecuteResult    *entities.ReplicationResult
	ExecuteErr       error
	LastSettings     *entities.Settings
	LastOpts         commands.ReplicateOptions
}

var _ commands.Replicate = (*StubReplicateCommand)(nil)

func (s *StubReplicateCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.ReplicateOptions,
) (*entities.ReplicationResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	if s.ExecuteResult == nil {
		s.ExecuteResult = &entities.ReplicationResult{State: entities.StateDone}
	}
	return s.ExecuteResult, s.ExecuteErr
}
