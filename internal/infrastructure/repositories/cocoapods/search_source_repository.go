package cocoapods

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/podreport/internal/domain/entities"
	"github.com/rios0rios0/podreport/internal/domain/repositories"
)

// maxResponseBytes caps how much of a search response is read.
const maxResponseBytes = 1 << 20

// SearchSourceRepository implements repositories.SourceRepository on top of
// the CocoaPods search API (pods.flat.hash.json).
type SearchSourceRepository struct {
	client    *http.Client
	searchURL string
}

var _ repositories.SourceRepository = (*SearchSourceRepository)(nil)

// NewSearchSourceRepository creates a repository querying searchURL, giving
// up on a request after timeout.
func NewSearchSourceRepository(searchURL string, timeout time.Duration) *SearchSourceRepository {
	return &SearchSourceRepository{
		client:    &http.Client{Timeout: timeout},
		searchURL: searchURL,
	}
}

// ResolveSourceURL queries the search service for the pod and returns the
// git URL of the first result. The request is made once, without retries.
func (it *SearchSourceRepository) ResolveSourceURL(ctx context.Context, name string) (*url.URL, error) {
	endpoint, err := it.queryURL(name)
	if err != nil {
		return nil, noSourceURL(name, err)
	}

	logger.Debugf("[%s] Searching %s", name, endpoint)

	results, err := it.search(ctx, endpoint)
	if err != nil {
		return nil, noSourceURL(name, err)
	}
	if len(results) == 0 {
		return nil, noSourceURL(name, errors.New("no search results"))
	}

	source := results[0].Source
	if source == nil || source.Git == "" {
		return nil, noSourceURL(name, errors.New("first result has no source.git field"))
	}

	gitURL, err := url.Parse(source.Git)
	if err != nil {
		return nil, noSourceURL(name, err)
	}

	return gitURL, nil
}

func (it *SearchSourceRepository) queryURL(name string) (string, error) {
	endpoint, err := url.Parse(it.searchURL)
	if err != nil {
		return "", fmt.Errorf("invalid search URL %q: %w", it.searchURL, err)
	}

	query := endpoint.Query()
	query.Set("query", name)
	query.Set("amount", "1")
	endpoint.RawQuery = query.Encode()

	return endpoint.String(), nil
}

func (it *SearchSourceRepository) search(ctx context.Context, endpoint string) ([]searchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := it.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search service returned status %d", resp.StatusCode)
	}

	var results []searchResult
	if decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&results); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", decodeErr)
	}
	return results, nil
}

func noSourceURL(name string, cause error) error {
	return fmt.Errorf("%w: %s: %w", entities.ErrNoSourceURL, name, cause)
}

type searchResult struct {
	Source *searchSource `json:"source"`
}

type searchSource struct {
	Git string `json:"git"`
}
