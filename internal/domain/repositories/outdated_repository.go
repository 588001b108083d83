package repositories

import (
	"context"

	"github.com/rios0rios0/podreport/internal/domain/entities"
)

// OutdatedRepository provides the raw `pod outdated` output for a project.
type OutdatedRepository interface {
	ListOutdated(ctx context.Context, projectDir string) (string, error)
}

// OutdatedRepositoryFactory builds the OutdatedRepository for a run. When
// fromFile is set, the output is read from that file ("-" for stdin)
// instead of running the pod executable.
type OutdatedRepositoryFactory func(settings *entities.Settings, fromFile string) OutdatedRepository
