//go:build unit

package file_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/podreport/internal/infrastructure/repositories/file"
)

func TestOutdatedRepositoryListOutdated(t *testing.T) {
	t.Parallel()

	t.Run("should read the saved output from a file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "outdated.txt")
		content := "- AFNetworking 2.6.3 -> 2.6.3 (latest version 3.0.4)\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		repo := file.NewOutdatedRepository(path, strings.NewReader("ignored"))

		// when
		raw, err := repo.ListOutdated(context.Background(), "/unused")

		// then
		require.NoError(t, err)
		assert.Equal(t, content, raw)
	})

	t.Run("should read stdin when the path is a dash", func(t *testing.T) {
		t.Parallel()

		// given
		content := "- Masonry 1.0.0 -> 1.0.0 (latest version 1.1.0)\n"
		repo := file.NewOutdatedRepository("-", strings.NewReader(content))

		// when
		raw, err := repo.ListOutdated(context.Background(), ".")

		// then
		require.NoError(t, err)
		assert.Equal(t, content, raw)
	})

	t.Run("should fail when the file does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing.txt")
		repo := file.NewOutdatedRepository(path, nil)

		// when
		_, err := repo.ListOutdated(context.Background(), ".")

		// then
		require.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "failed to read")
	})
}
