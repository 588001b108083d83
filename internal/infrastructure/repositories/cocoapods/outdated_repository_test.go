//go:build unit

package cocoapods_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/podreport/internal/domain/entities"
	"github.com/rios0rios0/podreport/internal/infrastructure/repositories/cocoapods"
	doubles "github.com/rios0rios0/podreport/test/infrastructure/repositorydoubles"
)

func writePodfile(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Podfile"), []byte("pod 'AFNetworking'\n"), 0o600))
}

func TestOutdatedRepositoryListOutdated(t *testing.T) {
	t.Parallel()

	t.Run("should run pod outdated in the project directory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writePodfile(t, dir)
		runner := &doubles.StubCommandRunner{Result: &entities.CommandResult{
			Stdout: "- AFNetworking 2.6.3 -> 2.6.3 (latest version 3.0.4)\n",
		}}
		repo := cocoapods.NewOutdatedRepository(runner, "pod")

		// when
		raw, err := repo.ListOutdated(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, "- AFNetworking 2.6.3 -> 2.6.3 (latest version 3.0.4)\n", raw)
		assert.Equal(t, 1, runner.RunCallCount)
		assert.Equal(t, "pod", runner.LastName)
		assert.Equal(t, []string{"outdated", "--project-directory=" + dir}, runner.LastArgs)
		assert.Equal(t, "true", runner.LastEnv["COCOAPODS_DISABLE_STATS"])
	})

	t.Run("should use the configured pod executable", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writePodfile(t, dir)
		runner := &doubles.StubCommandRunner{}
		repo := cocoapods.NewOutdatedRepository(runner, "/opt/bundle/bin/pod")

		// when
		_, err := repo.ListOutdated(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/opt/bundle/bin/pod", runner.LastName)
	})

	t.Run("should fall back to the worktree root holding the Podfile", func(t *testing.T) {
		t.Parallel()

		// given
		root := t.TempDir()
		_, err := git.PlainInit(root, false)
		require.NoError(t, err)
		writePodfile(t, root)
		nested := filepath.Join(root, "Sources", "App")
		require.NoError(t, os.MkdirAll(nested, 0o750))
		runner := &doubles.StubCommandRunner{}
		repo := cocoapods.NewOutdatedRepository(runner, "pod")

		// when
		_, err = repo.ListOutdated(context.Background(), nested)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"outdated", "--project-directory=" + root}, runner.LastArgs)
	})

	t.Run("should keep the given directory outside of a worktree", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		runner := &doubles.StubCommandRunner{}
		repo := cocoapods.NewOutdatedRepository(runner, "pod")

		// when
		_, err := repo.ListOutdated(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"outdated", "--project-directory=" + dir}, runner.LastArgs)
	})

	t.Run("should fail when pod exits with a non-zero status", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		writePodfile(t, dir)
		runner := &doubles.StubCommandRunner{Result: &entities.CommandResult{
			ExitStatus: 1,
			Stderr:     "[!] No `Podfile.lock' found in the project directory\n",
		}}
		repo := cocoapods.NewOutdatedRepository(runner, "pod")

		// when
		raw, err := repo.ListOutdated(context.Background(), dir)

		// then
		require.Error(t, err)
		assert.Empty(t, raw)
		assert.Contains(t, err.Error(), "pod outdated exited with status 1")
		assert.Contains(t, err.Error(), "No `Podfile.lock' found")
	})

	t.Run("should fail when pod cannot be started", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		startErr := errors.New("failed to resolve executable \"pod\"")
		runner := &doubles.StubCommandRunner{RunErr: startErr}
		repo := cocoapods.NewOutdatedRepository(runner, "pod")

		// when
		_, err := repo.ListOutdated(context.Background(), dir)

		// then
		require.ErrorIs(t, err, startErr)
	})
}
