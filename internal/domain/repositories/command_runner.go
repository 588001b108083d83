package repositories

import (
	"context"

	"github.com/rios0rios0/podreport/internal/domain/entities"
)

// CommandRunner abstracts running an external executable.
type CommandRunner interface {
	// Run resolves name to an executable, runs it with args and env merged
	// into the current environment, and captures its outputs. A non-zero
	// exit status is reported in the result, not as an error; errors are
	// reserved for commands that could not be started at all.
	Run(ctx context.Context, name string, args []string, env map[string]string) (*entities.CommandResult, error)
}
