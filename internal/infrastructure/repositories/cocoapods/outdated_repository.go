package cocoapods

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/podreport/internal/domain/repositories"
)

const podfileName = "Podfile"

// OutdatedRepository implements repositories.OutdatedRepository by running
// `pod outdated` through a CommandRunner.
type OutdatedRepository struct {
	runner    repositories.CommandRunner
	podBinary string
}

var _ repositories.OutdatedRepository = (*OutdatedRepository)(nil)

// NewOutdatedRepository creates a repository running the given pod executable.
func NewOutdatedRepository(runner repositories.CommandRunner, podBinary string) *OutdatedRepository {
	return &OutdatedRepository{
		runner:    runner,
		podBinary: podBinary,
	}
}

// ListOutdated runs `pod outdated` for the project and returns its standard output.
func (it *OutdatedRepository) ListOutdated(ctx context.Context, projectDir string) (string, error) {
	dir, err := resolveProjectDir(projectDir)
	if err != nil {
		return "", err
	}
	logger.Infof("Checking outdated pods in %s", dir)

	result, err := it.runner.Run(
		ctx,
		it.podBinary,
		[]string{"outdated", "--project-directory=" + dir},
		map[string]string{"COCOAPODS_DISABLE_STATS": "true"},
	)
	if err != nil {
		return "", err
	}

	if !result.Succeeded() {
		return "", fmt.Errorf(
			"%s outdated exited with status %d: %s",
			it.podBinary, result.ExitStatus, strings.TrimSpace(result.Stderr),
		)
	}

	return result.Stdout, nil
}

// resolveProjectDir returns the absolute project directory. When it holds no
// Podfile but belongs to a git worktree whose root does, the root is used.
func resolveProjectDir(projectDir string) (string, error) {
	dir, err := filepath.Abs(projectDir)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	if hasPodfile(dir) {
		return dir, nil
	}

	repo, openErr := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if openErr != nil {
		return dir, nil
	}
	worktree, wtErr := repo.Worktree()
	if wtErr != nil {
		return dir, nil
	}

	root := worktree.Filesystem.Root()
	if root != dir && hasPodfile(root) {
		logger.Infof("No %s in %s, using worktree root %s", podfileName, dir, root)
		return root, nil
	}

	return dir, nil
}

func hasPodfile(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, podfileName))
	return err == nil && !info.IsDir()
}
