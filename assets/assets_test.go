//go:build unit

package assets_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/selfreplicator/assets"
	"github.com/rios0rios0/selfreplicator/internal/domain/entities"
)

func TestSite(t *testing.T) {
	t.Parallel()

	t.Run("should embed every default source path", func(t *testing.T) {
		t.Parallel()

		// given
		site := assets.Site()

		for _, path := range entities.DefaultSourcePaths() {
			// when
			content, err := fs.ReadFile(site, path)

			// then
			require.NoError(t, err, path)
			assert.NotEmpty(t, content, path)
		}
	})
}
