package repositories

import (
	"context"
	"net/url"

	"github.com/rios0rios0/podreport/internal/domain/entities"
)

// SourceRepository looks up where a pod's source code lives.
type SourceRepository interface {
	// ResolveSourceURL returns the git URL of the named pod. Every failure
	// wraps entities.ErrNoSourceURL, whatever its cause.
	ResolveSourceURL(ctx context.Context, name string) (*url.URL, error)
}

// SourceRepositoryFactory builds the SourceRepository for a run.
type SourceRepositoryFactory func(settings *entities.Settings) SourceRepository
