package repositories

import "context"

// SourceRepository reads the bytes of one file of the fixed file set.
type SourceRepository interface {
	// Location describes where files are read from, for log lines.
	Location() string

	// Fetch returns the literal content stored at path.
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// SourceLocator picks the SourceRepository for a configured location.
type SourceLocator interface {
	Resolve(location string) (SourceRepository, error)
}
