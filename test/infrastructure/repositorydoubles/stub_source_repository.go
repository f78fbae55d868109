//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/selfreplicator/internal/domain/repositories"
)

// StubSourceRepository implements repositories.SourceRepository from an in-memory map.
type StubSourceRepository struct {
	Name      string
	Files     map[string][]byte
	FetchErrs map[string]error
	Fetched   []string
}

var _ repositories.SourceRepository = (*StubSourceRepository)(nil)

func (s *StubSourceRepository) Location() string {
	if s.Name == "" {
		return "stub"
	}
	return s.Name
}

func (s *StubSourceRepository) Fetch(_ context.Context, path string) ([]byte, error) {
	s.Fetched = append(s.Fetched, path)
	if err, ok := s.FetchErrs[path]; ok {
		return nil, err
	}
	if content, ok := s.Files[path]; ok {
		return content, nil
	}
	return nil, fmt.Errorf("file not found: %s", path)
}

// StubSourceLocator implements repositories.SourceLocator returning a fixed source.
type StubSourceLocator struct {
	Source     repositories.SourceRepository
	ResolveErr error
	Locations  []string
}

var _ repositories.SourceLocator = (*StubSourceLocator)(nil)

func (s *StubSourceLocator) Resolve(location string) (repositories.SourceRepository, error) {
	s.Locations = append(s.Locations, location)
	if s.ResolveErr != nil {
		return nil, s.ResolveErr
	}
	return s.Source, nil
}
