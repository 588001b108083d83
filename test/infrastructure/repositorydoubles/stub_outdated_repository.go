//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/podreport/internal/domain/repositories"
)

// StubOutdatedRepository implements repositories.OutdatedRepository with canned output.
type StubOutdatedRepository struct {
	Output  string
	ListErr error
	// spy: project directories requested
	ProjectDirs []string
}

var _ repositories.OutdatedRepository = (*StubOutdatedRepository)(nil)

func (s *StubOutdatedRepository) ListOutdated(_ context.Context, projectDir string) (string, error) {
	s.ProjectDirs = append(s.ProjectDirs, projectDir)
	return s.Output, s.ListErr
}
