package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/podreport/internal/domain/entities"
	"github.com/rios0rios0/podreport/internal/domain/repositories"
)

// ExecCommandRunner implements repositories.CommandRunner with os/exec.
type ExecCommandRunner struct {
	lookPath func(file string) (string, error)
}

var _ repositories.CommandRunner = (*ExecCommandRunner)(nil)

// NewExecCommandRunner creates a runner resolving executables through PATH.
func NewExecCommandRunner() *ExecCommandRunner {
	return &ExecCommandRunner{lookPath: exec.LookPath}
}

// Run resolves name to a path, runs it and captures stdout and stderr separately.
func (it *ExecCommandRunner) Run(
	ctx context.Context,
	name string,
	args []string,
	env map[string]string,
) (*entities.CommandResult, error) {
	path, err := it.lookPath(name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable %q: %w", name, err)
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Env = mergeEnv(os.Environ(), env)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debugf("Running %s %s", path, strings.Join(args, " "))

	result := &entities.CommandResult{}
	if runErr := cmd.Run(); runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, fmt.Errorf("failed to run %q: %w", name, runErr)
		}
		result.ExitStatus = exitErr.ExitCode()
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result, nil
}

// mergeEnv appends overrides to base; exec keeps the last value of a
// duplicated key, so overrides win.
func mergeEnv(base []string, overrides map[string]string) []string {
	keys := make([]string, 0, len(overrides))
	for key := range overrides {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(base)+len(keys))
	env = append(env, base...)
	for _, key := range keys {
		env = append(env, key+"="+overrides[key])
	}
	return env
}
