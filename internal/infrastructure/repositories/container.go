package repositories

import (
	"os"

	"go.uber.org/dig"

	"github.com/rios0rios0/podreport/internal/domain/entities"
	domainRepos "github.com/rios0rios0/podreport/internal/domain/repositories"
	"github.com/rios0rios0/podreport/internal/infrastructure/repositories/cocoapods"
	"github.com/rios0rios0/podreport/internal/infrastructure/repositories/file"
	"github.com/rios0rios0/podreport/internal/infrastructure/repositories/process"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() domainRepos.CommandRunner {
		return process.NewExecCommandRunner()
	}); err != nil {
		return err
	}

	if err := container.Provide(NewOutdatedRepositoryFactory); err != nil {
		return err
	}

	if err := container.Provide(NewSourceRepositoryFactory); err != nil {
		return err
	}

	return nil
}

// NewOutdatedRepositoryFactory picks the saved-output reader when a file is
// given and the pod executable otherwise.
func NewOutdatedRepositoryFactory(runner domainRepos.CommandRunner) domainRepos.OutdatedRepositoryFactory {
	return func(settings *entities.Settings, fromFile string) domainRepos.OutdatedRepository {
		if fromFile != "" {
			return file.NewOutdatedRepository(fromFile, os.Stdin)
		}
		return cocoapods.NewOutdatedRepository(runner, settings.PodBinary)
	}
}

// NewSourceRepositoryFactory builds search clients from the run settings.
func NewSourceRepositoryFactory() domainRepos.SourceRepositoryFactory {
	return func(settings *entities.Settings) domainRepos.SourceRepository {
		return cocoapods.NewSearchSourceRepository(settings.SearchURL, settings.Timeout)
	}
}
