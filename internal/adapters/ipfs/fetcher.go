package ipfs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lobintsev/evmcrispr/internal/domain"
	"github.com/lobintsev/evmcrispr/internal/domain/config"
	"github.com/lobintsev/evmcrispr/internal/interpreter"
)

// ArtifactFile is the artifact path inside an app's content directory.
const ArtifactFile = "artifact.json"

// Fetcher downloads app artifacts from an IPFS HTTP gateway
type Fetcher struct {
	gateway    string
	httpClient *http.Client
}

// NewFetcher creates a fetcher for the given gateway base URL
func NewFetcher(gateway string) *Fetcher {
	if !strings.HasSuffix(gateway, "/") {
		gateway += "/"
	}
	return &Fetcher{
		gateway: gateway,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewFetcherFromConfig creates a fetcher for the configured gateway
func NewFetcherFromConfig(cfg *config.RuntimeConfig) *Fetcher {
	return NewFetcher(cfg.IPFSGateway)
}

// URL returns the gateway URL of the artifact behind a content locator
// ("ipfs:<cid>" or a bare cid).
func (f *Fetcher) URL(contentURI string) (string, error) {
	cid := strings.TrimPrefix(strings.TrimSpace(contentURI), "ipfs:")
	if cid == "" {
		return "", fmt.Errorf("empty content URI")
	}
	return f.gateway + cid + "/" + ArtifactFile, nil
}

// Fetch downloads and parses the artifact of an app version
func (f *Fetcher) Fetch(ctx context.Context, contentURI string) (*domain.Artifact, error) {
	url, err := f.URL(contentURI)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewException(err, "failed to fetch artifact %s", contentURI)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.NewNotFoundError("artifact %s not found", contentURI)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewException(nil, "failed to fetch artifact %s: status %d", contentURI, resp.StatusCode)
	}

	artifact, err := domain.ParseArtifact(body)
	if err != nil {
		return nil, fmt.Errorf("invalid artifact %s: %w", contentURI, err)
	}
	return artifact, nil
}

var _ interpreter.ArtifactFetcher = (*Fetcher)(nil)
