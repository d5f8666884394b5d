// Package assethost implements the AssetProber port against the cover
// image host. The host serves images by derived key and offers no metadata
// endpoint, so existence is observed by attempting the GET itself.
package assethost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/marquee-labs/marquee-cli/internal/core/domain"
	"github.com/marquee-labs/marquee-cli/internal/core/ports/driven"
)

// DefaultTimeout is the default probe timeout.
const DefaultTimeout = 15 * time.Second

// Ensure Prober implements the interface.
var _ driven.AssetProber = (*Prober)(nil)

// Prober checks cover existence on the asset host.
type Prober struct {
	baseURL string
	httpc   *http.Client
}

// NewProber creates a prober. A nil httpc uses a default client with
// DefaultTimeout.
func NewProber(baseURL string, httpc *http.Client) *Prober {
	if httpc == nil {
		httpc = &http.Client{Timeout: DefaultTimeout}
	}
	return &Prober{baseURL: baseURL, httpc: httpc}
}

// Probe attempts to load the cover for a derived key. A nil return means
// the host served a non-empty resource.
func (p *Prober) Probe(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty asset key", domain.ErrInvalidInput)
	}

	endpoint := p.baseURL + "/covers/" + url.PathEscape(key) + ".jpg"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrNetwork, err)
	}

	resp, err := p.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: asset host returned %s", domain.ErrNetwork, resp.Status)
	}

	// An existing key can still serve a zero-byte placeholder; require at
	// least one body byte before counting the cover as displayable.
	if _, err := io.CopyN(io.Discard, resp.Body, 1); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty asset body", domain.ErrNetwork)
		}
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	return nil
}
