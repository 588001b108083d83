package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/podreport/internal/domain/entities"
	"github.com/rios0rios0/podreport/internal/domain/repositories"
)

// Report is the interface for the report command.
type Report interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ReportOptions) ([]entities.PodUpdate, error)
}

// ReportOptions holds runtime options for a single report.
type ReportOptions struct {
	ProjectDir string
	FromFile   string // If set, read `pod outdated` output from this file ("-" for stdin)
}

// ReportCommand lists the outdated pods of a project and links each of them
// to its releases page.
type ReportCommand struct {
	newOutdated repositories.OutdatedRepositoryFactory
	newSource   repositories.SourceRepositoryFactory
	platform    entities.HostingPlatform
}

// NewReportCommand creates a new ReportCommand.
func NewReportCommand(
	newOutdated repositories.OutdatedRepositoryFactory,
	newSource repositories.SourceRepositoryFactory,
	platform entities.HostingPlatform,
) *ReportCommand {
	return &ReportCommand{
		newOutdated: newOutdated,
		newSource:   newSource,
		platform:    platform,
	}
}

// Execute runs `pod outdated` (or reads its saved output) and builds the report.
func (it *ReportCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ReportOptions,
) ([]entities.PodUpdate, error) {
	raw, err := it.newOutdated(settings, opts.FromFile).ListOutdated(ctx, opts.ProjectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list outdated pods: %w", err)
	}

	builder := NewReportBuilder(it.newSource(settings), it.platform, settings.Concurrency)
	updates, err := builder.BuildReport(ctx, raw)
	if err != nil {
		return nil, err
	}

	linked := 0
	for _, update := range updates {
		if update.HasReleasesURL() {
			linked++
		}
	}
	logger.Infof("Report complete: %d outdated pods, %d linked to %s releases",
		len(updates), linked, it.platform.Name)

	return updates, nil
}
