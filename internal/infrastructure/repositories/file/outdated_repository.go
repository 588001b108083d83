package file

import (
	"context"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/podreport/internal/domain/repositories"
)

const stdinPath = "-"

// OutdatedRepository implements repositories.OutdatedRepository by reading
// previously captured `pod outdated` output instead of running the tool.
type OutdatedRepository struct {
	path  string
	stdin io.Reader
}

var _ repositories.OutdatedRepository = (*OutdatedRepository)(nil)

// NewOutdatedRepository creates a repository reading path, or stdin when
// path is "-".
func NewOutdatedRepository(path string, stdin io.Reader) *OutdatedRepository {
	return &OutdatedRepository{
		path:  path,
		stdin: stdin,
	}
}

// ListOutdated returns the saved output. The project directory is not used.
func (it *OutdatedRepository) ListOutdated(_ context.Context, _ string) (string, error) {
	if it.path == stdinPath {
		logger.Info("Reading pod outdated output from stdin")
		data, err := io.ReadAll(it.stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	logger.Infof("Reading pod outdated output from %s", it.path)
	data, err := os.ReadFile(it.path)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", it.path, err)
	}
	return string(data), nil
}
