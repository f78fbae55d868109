package sources

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rios0rios0/selfreplicator/assets"
	"github.com/rios0rios0/selfreplicator/internal/domain/repositories"
)

const embeddedLocation = "embedded site"

// SourceResolver implements repositories.SourceLocator.
type SourceResolver struct{}

// NewSourceResolver creates a SourceResolver.
func NewSourceResolver() *SourceResolver {
	return &SourceResolver{}
}

// Resolve returns the embedded site for an empty location, an HTTP source for
// http(s) URLs and a directory source for anything else.
func (r *SourceResolver) Resolve(location string) (repositories.SourceRepository, error) {
	location = strings.TrimSpace(location)

	switch {
	case location == "":
		return NewFSSourceRepository(assets.Site(), embeddedLocation), nil
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSourceRepository(location, nil), nil
	}

	dir, err := filepath.Abs(location)
	if err != nil {
		return nil, fmt.Errorf("invalid source directory %q: %w", location, err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("source directory %q: %w", location, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %q is not a directory", location)
	}
	return NewFSSourceRepository(os.DirFS(dir), dir), nil
}
