package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rios0rios0/selfreplicator/internal/domain/repositories"
)

// HTTPSourceRepository reads source files relative to a base URL, for example a
// site that was already replicated.
type HTTPSourceRepository struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSourceRepository creates a source repository reading from baseURL.
func NewHTTPSourceRepository(baseURL string, httpClient *http.Client) repositories.SourceRepository {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPSourceRepository{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (r *HTTPSourceRepository) Location() string { return r.baseURL }

// Fetch downloads the file at name. Only 200 OK is a success.
func (r *HTTPSourceRepository) Fetch(ctx context.Context, name string) ([]byte, error) {
	rawURL := r.baseURL + "/" + escapePath(strings.TrimPrefix(name, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", name, err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP error for %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %s for %s", resp.Status, name)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return body, nil
}

func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
