package commands

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/podreport/internal/domain/entities"
	"github.com/rios0rios0/podreport/internal/domain/repositories"
)

// ReportBuilder turns raw `pod outdated` output into the final report.
// Parsing is all-or-nothing; linking each pod to its releases page is best
// effort and never fails the report.
type ReportBuilder struct {
	source      repositories.SourceRepository
	platform    entities.HostingPlatform
	concurrency int
}

// NewReportBuilder creates a ReportBuilder resolving at most concurrency
// pods at the same time. Values below one mean strictly sequential.
func NewReportBuilder(
	source repositories.SourceRepository,
	platform entities.HostingPlatform,
	concurrency int,
) *ReportBuilder {
	return &ReportBuilder{
		source:      source,
		platform:    platform,
		concurrency: max(concurrency, 1),
	}
}

// BuildReport parses raw and resolves a releases URL for every outdated pod.
// The only error it returns is the parser's; records keep the order in
// which the pods appear in raw.
func (it *ReportBuilder) BuildReport(ctx context.Context, raw string) ([]entities.PodUpdate, error) {
	pods, err := entities.ParseOutdatedOutput(raw)
	if err != nil {
		return nil, err
	}
	pods = uniquePods(pods)

	updates := make([]entities.PodUpdate, len(pods))

	var group errgroup.Group
	group.SetLimit(it.concurrency)
	for i, pod := range pods {
		group.Go(func() error {
			updates[i] = it.buildUpdate(ctx, pod)
			return nil
		})
	}
	_ = group.Wait() // workers never fail

	return updates, nil
}

func (it *ReportBuilder) buildUpdate(ctx context.Context, pod entities.OutdatedPod) entities.PodUpdate {
	update := entities.PodUpdate{
		Name:             pod.Name,
		CurrentVersion:   pod.CurrentVersion,
		AvailableVersion: pod.AvailableVersion,
	}

	sourceURL, err := it.source.ResolveSourceURL(ctx, pod.Name)
	if err != nil {
		logger.Debugf("[%s] Skipping releases link: %v", pod.Name, err)
		return update
	}

	project, ok, err := it.platform.Project(sourceURL)
	if err != nil {
		if errors.Is(err, entities.ErrMalformedHostURL) {
			logger.Warnf("[%s] Unexpected %s source URL: %v", pod.Name, it.platform.Name, err)
		}
		return update
	}
	if !ok {
		logger.Debugf("[%s] Source %s is not on %s", pod.Name, sourceURL, it.platform.Name)
		return update
	}

	update.ReleasesURL = it.platform.ReleasesURL(project)
	return update
}

// uniquePods drops repeated pod names, keeping the first occurrence.
func uniquePods(pods []entities.OutdatedPod) []entities.OutdatedPod {
	seen := make(map[string]bool, len(pods))
	result := make([]entities.OutdatedPod, 0, len(pods))
	for _, pod := range pods {
		if seen[pod.Name] {
			logger.Debugf("[%s] Ignoring duplicate entry", pod.Name)
			continue
		}
		seen[pod.Name] = true
		result = append(result, pod)
	}
	return result
}
