// Package catalog fetches localization catalogs and launcher release information over HTTP.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultTimeout bounds a catalog request when no client is supplied.
const DefaultTimeout = 30 * time.Second

var _ ports.CatalogFetcher = (*Fetcher)(nil)

// Fetcher implements ports.CatalogFetcher.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a Fetcher. A nil client gets DefaultTimeout.
func NewFetcher(client *http.Client, userAgent string) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Fetcher{client: client, userAgent: userAgent}
}

// Fetch retrieves and decodes the catalog served at sourceURL.
func (f *Fetcher) Fetch(ctx context.Context, sourceURL string) (*domain.Catalog, error) {
	var catalog domain.Catalog
	err := getJSON(ctx, f.client, f.userAgent, sourceURL, &catalog, requestErrors{
		request: domain.ErrCatalogRequestFailed,
		status:  domain.ErrCatalogStatus,
		decode:  domain.ErrCatalogDecodeFailed,
	})
	if err != nil {
		return nil, err
	}
	return &catalog, nil
}

type requestErrors struct {
	request error
	status  error
	decode  error
}

func getJSON(ctx context.Context, client *http.Client, userAgent, url string, out any, errs requestErrors) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return domain.Classify(domain.ErrConfiguration, zerr.With(zerr.Wrap(err, errs.request.Error()), "url", url))
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return domain.Classify(domain.ErrNetwork, zerr.With(zerr.Wrap(err, errs.request.Error()), "url", url))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Classify(domain.ErrProtocol,
			zerr.With(domain.With(errs.status, "url", url), "status", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if interrupted(ctx, err) {
			return domain.Classify(domain.ErrNetwork, zerr.With(zerr.Wrap(err, errs.request.Error()), "url", url))
		}
		return domain.Classify(domain.ErrDecode, zerr.With(zerr.Wrap(err, errs.decode.Error()), "url", url))
	}

	return nil
}

// interrupted reports whether a body read failed because the transfer was
// cut short rather than because the payload was malformed.
func interrupted(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
