//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/podreport/internal/domain/entities"
	"github.com/rios0rios0/podreport/test/domain/entitybuilders"
)

func TestParseOutdatedOutput(t *testing.T) {
	t.Parallel()

	t.Run("should extract name, current and available versions", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "- AFNetworking 2.6.3 -> 2.6.3 (latest version 3.0.4)\n"

		// when
		pods, err := entities.ParseOutdatedOutput(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.OutdatedPod{
			{Name: "AFNetworking", CurrentVersion: "2.6.3", AvailableVersion: "3.0.4"},
		}, pods)
	})

	t.Run("should keep the order of the input lines", func(t *testing.T) {
		t.Parallel()

		// given
		raw := entitybuilders.NewOutdatedOutputBuilder().
			WithPod("1PasswordExtension", "1.6.4", "1.8").
			WithPod("AFNetworking", "2.6.3", "3.0.4").
			WithLine("- AMPopTip 0.10.1 -> 0.10.2 (latest version 0.10.2)").
			Build()

		// when
		pods, err := entities.ParseOutdatedOutput(raw)

		// then
		require.NoError(t, err)
		require.Len(t, pods, 3)
		assert.Equal(t, "1PasswordExtension", pods[0].Name)
		assert.Equal(t, "AFNetworking", pods[1].Name)
		assert.Equal(t, "AMPopTip", pods[2].Name)
		assert.Equal(t, "0.10.1", pods[2].CurrentVersion)
		assert.Equal(t, "0.10.2", pods[2].AvailableVersion)
	})

	t.Run("should return nothing when there are no candidate lines", func(t *testing.T) {
		t.Parallel()

		// given
		raw := entitybuilders.NewOutdatedOutputBuilder().
			WithLine("").
			WithLine("No pod updates are available.").
			Build()

		// when
		pods, err := entities.ParseOutdatedOutput(raw)

		// then
		require.NoError(t, err)
		assert.Empty(t, pods)
	})

	t.Run("should return nothing for empty input", func(t *testing.T) {
		t.Parallel()

		// given
		raw := ""

		// when
		pods, err := entities.ParseOutdatedOutput(raw)

		// then
		require.NoError(t, err)
		assert.Empty(t, pods)
	})

	t.Run("should handle CRLF line endings", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "Analyzing dependencies\r\n- Alamofire 4.0.0 -> 4.0.0 (latest version 5.9.1)\r\n"

		// when
		pods, err := entities.ParseOutdatedOutput(raw)

		// then
		require.NoError(t, err)
		require.Len(t, pods, 1)
		assert.Equal(t, "5.9.1", pods[0].AvailableVersion)
	})

	t.Run("should ignore lines not starting with a dash", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "  - indented 1.0 -> 1.0 (latest version 2.0)\n" +
			"- Masonry 1.0.0 -> 1.0.0 (latest version 1.1.0)\n"

		// when
		pods, err := entities.ParseOutdatedOutput(raw)

		// then
		require.NoError(t, err)
		require.Len(t, pods, 1)
		assert.Equal(t, "Masonry", pods[0].Name)
	})

	t.Run("should fail the whole parse when a line has too few tokens", func(t *testing.T) {
		t.Parallel()

		// given
		raw := entitybuilders.NewOutdatedOutputBuilder().
			WithPod("AFNetworking", "2.6.3", "3.0.4").
			WithLine("- Broken 1.0 -> 2.0").
			WithPod("Masonry", "1.0.0", "1.1.0").
			Build()

		// when
		pods, err := entities.ParseOutdatedOutput(raw)

		// then
		require.Error(t, err)
		require.ErrorIs(t, err, entities.ErrInvalidFormat)
		assert.Nil(t, pods)
		assert.Contains(t, err.Error(), "- Broken 1.0 -> 2.0")
	})

	t.Run("should accept a line with exactly nine tokens", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "- Name 1.0 -> 1.0 (latest version 2.0"

		// when
		pods, err := entities.ParseOutdatedOutput(raw)

		// then
		require.NoError(t, err)
		require.Len(t, pods, 1)
		assert.Equal(t, "2.0", pods[0].AvailableVersion)
	})

	t.Run("should reject a line with eight tokens", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "- Name 1.0 -> 1.0 (latest version"

		// when
		_, err := entities.ParseOutdatedOutput(raw)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidFormat)
	})
}
