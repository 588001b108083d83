//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/podreport/internal/domain/entities"
	"github.com/rios0rios0/podreport/internal/domain/repositories"
)

// StubCommandRunner implements repositories.CommandRunner with a canned result.
type StubCommandRunner struct {
	Result *entities.CommandResult
	RunErr error

	// spy: last invocation
	RunCallCount int
	LastName     string
	LastArgs     []string
	LastEnv      map[string]string
}

var _ repositories.CommandRunner = (*StubCommandRunner)(nil)

func (s *StubCommandRunner) Run(
	_ context.Context,
	name string,
	args []string,
	env map[string]string,
) (*entities.CommandResult, error) {
	s.RunCallCount++
	s.LastName = name
	s.LastArgs = args
	s.LastEnv = env
	if s.RunErr != nil {
		return nil, s.RunErr
	}
	if s.Result == nil {
		return &entities.CommandResult{}, nil
	}
	return s.Result, nil
}
