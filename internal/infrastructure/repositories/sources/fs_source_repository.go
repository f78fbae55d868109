package sources

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/rios0rios0/selfreplicator/internal/domain/repositories"
)

// FSSourceRepository reads source files from a file system, either the site
// embedded in the binary or a local directory.
type FSSourceRepository struct {
	fsys     fs.FS
	location string
}

// NewFSSourceRepository creates a source repository reading from fsys.
// location is only used to describe the source in log lines.
func NewFSSourceRepository(fsys fs.FS, location string) repositories.SourceRepository {
	return &FSSourceRepository{fsys: fsys, location: location}
}

func (r *FSSourceRepository) Location() string { return r.location }

// Fetch reads the whole file at name.
func (r *FSSourceRepository) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cleaned := path.Clean(strings.TrimPrefix(name, "/"))
	content, err := fs.ReadFile(r.fsys, cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q from %s: %w", name, r.location, err)
	}
	return content, nil
}
