package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/limbus/internal/adapters/catalog"
	"go.trai.ch/limbus/internal/core/domain"
)

const catalogJSON = `{
  "format_version": 1,
  "localizations": [
    {
      "id": "en",
      "version": "2",
      "name": "English",
      "flag": "gb",
      "icon": "",
      "description": "Community translation",
      "authors": ["a", "b"],
      "url": "https://example.com/en.zip",
      "size": 1024,
      "fonts": [{"url": "https://example.com/f.ttf", "hash": "abc", "name": "f.ttf"}],
      "format": "compatible",
      "extra_field": true
    }
  ]
}`

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Limbus Launcher", r.Header.Get("User-Agent"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	srv := serve(t, http.StatusOK, catalogJSON)

	got, err := catalog.NewFetcher(srv.Client(), "Limbus Launcher").Fetch(context.Background(), srv.URL)
	require.NoError(t, err)

	require.Len(t, got.Localizations, 1)
	loc := got.Localizations[0]
	assert.Equal(t, "en", loc.ID)
	assert.Equal(t, int64(1024), loc.Size)
	assert.Equal(t, domain.FormatCompatible, loc.Format.Kind)
	assert.Equal(t, []domain.Font{{URL: "https://example.com/f.ttf", Hash: "abc", Name: "f.ttf"}}, loc.Fonts)
}

func TestFetcher_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		kind     error
		specific error
	}{
		{
			name:     "non-success status",
			status:   http.StatusNotFound,
			body:     "not found",
			kind:     domain.ErrProtocol,
			specific: domain.ErrCatalogStatus,
		},
		{
			name:     "malformed payload",
			status:   http.StatusOK,
			body:     `{"localizations": 42}`,
			kind:     domain.ErrDecode,
			specific: domain.ErrCatalogDecodeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := serve(t, tt.status, tt.body)
			_, err := catalog.NewFetcher(srv.Client(), "Limbus Launcher").Fetch(context.Background(), srv.URL)
			require.ErrorIs(t, err, tt.kind)
			assert.ErrorContains(t, err, tt.specific.Error())
		})
	}
}

func TestFetcher_NetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := catalog.NewFetcher(nil, "Limbus Launcher").Fetch(context.Background(), url)
	require.ErrorIs(t, err, domain.ErrNetwork)
	assert.ErrorContains(t, err, domain.ErrCatalogRequestFailed.Error())
}

func TestFetcher_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	client := &http.Client{Timeout: 50 * time.Millisecond}
	_, err := catalog.NewFetcher(client, "Limbus Launcher").Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, domain.ErrNetwork)
}

func TestFetcher_TimeoutWhileReadingBody(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"format_version": 1, "localizations": [`))
		w.(http.Flusher).Flush()
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	client := &http.Client{Timeout: 100 * time.Millisecond}
	_, err := catalog.NewFetcher(client, "Limbus Launcher").Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, domain.ErrNetwork)
	assert.NotErrorIs(t, err, domain.ErrDecode)
}

func TestFetcher_TruncatedBodyIsDecodeError(t *testing.T) {
	t.Parallel()

	srv := serve(t, http.StatusOK, `{"format_version": 1, "localizations": [`)

	_, err := catalog.NewFetcher(srv.Client(), "Limbus Launcher").Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, domain.ErrDecode)
	assert.ErrorContains(t, err, domain.ErrCatalogDecodeFailed.Error())
}

func TestReleaseChecker_Latest(t *testing.T) {
	t.Parallel()

	srv := serve(t, http.StatusOK, `{"tag_name": "v1.4.0", "name": "Release"}`)

	tag, err := catalog.NewReleaseChecker(srv.Client(), "Limbus Launcher", srv.URL).Latest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v1.4.0", tag)
}

func TestReleaseChecker_MissingTag(t *testing.T) {
	t.Parallel()

	srv := serve(t, http.StatusOK, `{}`)

	_, err := catalog.NewReleaseChecker(srv.Client(), "Limbus Launcher", srv.URL).Latest(context.Background())
	require.ErrorIs(t, err, domain.ErrDecode)
	require.ErrorIs(t, err, domain.ErrReleaseCheckFailed)
}

func TestIsNewer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current, latest string
		want            bool
	}{
		{"1.0.0", "v1.1.0", true},
		{"v1.1.0", "1.1.0", false},
		{"v2.0.0", "v1.9.9", false},
		{"dev", "v0.1.0", true},
		{"v1.0.0", "nightly", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, catalog.IsNewer(tt.current, tt.latest), "%s -> %s", tt.current, tt.latest)
	}
}
