//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/selfreplicator/internal/domain/repositories"
)

// StubCredentialRepository implements repositories.CredentialRepository.
type StubCredentialRepository struct {
	Token     string
	Err       error
	CallCount int
}

var _ repositories.CredentialRepository = (*StubCredentialRepository)(nil)

func (s *StubCredentialRepository) Credential(_ context.Context) (string, error) {
	s.CallCount++
	return s.Token, s.Err
}
