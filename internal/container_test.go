//go:build unit

package internal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/podreport/internal"
	"github.com/rios0rios0/podreport/internal/domain/commands"
	"github.com/rios0rios0/podreport/internal/domain/entities"
	"github.com/rios0rios0/podreport/internal/domain/repositories"
	"github.com/rios0rios0/podreport/internal/infrastructure/controllers"
)

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	t.Run("should resolve the report controller with all its dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()

		// when
		err := internal.RegisterProviders(container)

		// then
		require.NoError(t, err)
		invokeErr := container.Invoke(func(
			controller *controllers.ReportController,
			report commands.Report,
			platform entities.HostingPlatform,
			newOutdated repositories.OutdatedRepositoryFactory,
			newSource repositories.SourceRepositoryFactory,
		) {
			assert.NotNil(t, controller)
			assert.NotNil(t, report)
			assert.Equal(t, entities.GitHub, platform)
			assert.NotNil(t, newOutdated(entities.DefaultSettings(), ""))
			assert.NotNil(t, newSource(entities.DefaultSettings()))
		})
		require.NoError(t, invokeErr)
	})
}
