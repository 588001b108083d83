//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/rios0rios0/podreport/internal/domain/entities"
	"github.com/rios0rios0/podreport/internal/domain/repositories"
)

// SpySourceRepository implements repositories.SourceRepository as a configurable spy.
// It is safe for concurrent use.
type SpySourceRepository struct {
	// --- ResolveSourceURL ---
	SourceURLs map[string]string // pod name -> raw git URL
	ResolveErr error             // returned for every pod when set

	mu sync.Mutex
	// spy: pod names that were looked up
	ResolvedNames []string
}

var _ repositories.SourceRepository = (*SpySourceRepository)(nil)

func (s *SpySourceRepository) ResolveSourceURL(_ context.Context, name string) (*url.URL, error) {
	s.mu.Lock()
	s.ResolvedNames = append(s.ResolvedNames, name)
	s.mu.Unlock()

	if s.ResolveErr != nil {
		return nil, s.ResolveErr
	}

	raw, ok := s.SourceURLs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s: no search results", entities.ErrNoSourceURL, name)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", entities.ErrNoSourceURL, name, err)
	}
	return parsed, nil
}

// Calls returns how many lookups were made.
func (s *SpySourceRepository) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ResolvedNames)
}
