package download_test

import (
	"bytes"
	"context"
	"crypto/md5" //nolint:gosec // matches the catalog digest
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/limbus/internal/adapters/download"
	"go.trai.ch/limbus/internal/adapters/fs"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
)

func serveBytes(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newDownloader(srv *httptest.Server) *download.Downloader {
	return download.NewDownloader(srv.Client(), "Limbus Launcher", fs.NewHasher(fs.NewWalker()))
}

func md5Hex(b []byte) string {
	sum := md5.Sum(b) //nolint:gosec // see import
	return hex.EncodeToString(sum[:])
}

func assertNoLeftovers(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp_download")
	}
}

func TestDownloader_Download(t *testing.T) {
	t.Parallel()

	body := bytes.Repeat([]byte("x"), 100)
	srv := serveBytes(t, body)
	dest := filepath.Join(t.TempDir(), "localization.zip")

	require.NoError(t, newDownloader(srv).Download(context.Background(), srv.URL, 100, dest))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, body, got)
	assertNoLeftovers(t, filepath.Dir(dest))
}

func TestDownloader_DownloadWithoutExpectedSize(t *testing.T) {
	t.Parallel()

	srv := serveBytes(t, []byte("payload"))
	dest := filepath.Join(t.TempDir(), "nested", "localization.zip")

	require.NoError(t, newDownloader(srv).Download(context.Background(), srv.URL, 0, dest))
	assert.FileExists(t, dest)
}

func TestDownloader_SizeMismatch(t *testing.T) {
	t.Parallel()

	srv := serveBytes(t, bytes.Repeat([]byte("x"), 99))
	dest := filepath.Join(t.TempDir(), "localization.zip")

	err := newDownloader(srv).Download(context.Background(), srv.URL, 100, dest)
	require.ErrorIs(t, err, domain.ErrIntegrity)
	require.ErrorIs(t, err, domain.ErrSizeMismatch)
	assert.NoFileExists(t, dest)
	assertNoLeftovers(t, filepath.Dir(dest))
}

func TestDownloader_Status(t *testing.T) {
	t.Parallel()

	srv := serveBytes(t, nil)
	dest := filepath.Join(t.TempDir(), "localization.zip")

	err := newDownloader(srv).Download(context.Background(), srv.URL+"/missing", 0, dest)
	require.ErrorIs(t, err, domain.ErrProtocol)
	require.ErrorIs(t, err, domain.ErrDownloadStatus)
	assert.NoFileExists(t, dest)
}

func TestDownloader_NetworkFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	dl := download.NewDownloader(nil, "Limbus Launcher", fs.NewHasher(fs.NewWalker()))
	err := dl.Download(context.Background(), url, 0, filepath.Join(t.TempDir(), "a.zip"))
	require.ErrorIs(t, err, domain.ErrNetwork)
}

func TestDownloader_DownloadVerified(t *testing.T) {
	t.Parallel()

	body := []byte("font bytes")
	srv := serveBytes(t, body)

	t.Run("matching hash", func(t *testing.T) {
		t.Parallel()

		dest := filepath.Join(t.TempDir(), "abc.ttf")
		err := newDownloader(srv).DownloadVerified(context.Background(), srv.URL, strings.ToUpper(md5Hex(body)), dest)
		require.NoError(t, err)
		assert.FileExists(t, dest)
	})

	t.Run("mismatching hash", func(t *testing.T) {
		t.Parallel()

		dest := filepath.Join(t.TempDir(), "abc.ttf")
		err := newDownloader(srv).DownloadVerified(context.Background(), srv.URL, md5Hex([]byte("other")), dest)
		require.ErrorIs(t, err, domain.ErrIntegrity)
		require.ErrorIs(t, err, domain.ErrHashMismatch)
		assert.NoFileExists(t, dest)
		assertNoLeftovers(t, filepath.Dir(dest))
	})
}

type recordingVertex struct {
	ports.Vertex
	out bytes.Buffer
}

func (v *recordingVertex) Stdout() io.Writer { return &v.out }

func TestDownloader_ReportsProgressToVertex(t *testing.T) {
	t.Parallel()

	body := bytes.Repeat([]byte("x"), 2048)
	srv := serveBytes(t, body)
	v := &recordingVertex{}
	ctx := ports.ContextWithVertex(context.Background(), v)

	require.NoError(t, newDownloader(srv).Download(ctx, srv.URL, 2048, filepath.Join(t.TempDir(), "a.zip")))
	assert.Equal(t, "2.0 kB / 2.0 kB\n", v.out.String())
}

func TestDownloader_Cancelled(t *testing.T) {
	t.Parallel()

	srv := serveBytes(t, []byte("payload"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dest := filepath.Join(t.TempDir(), "a.zip")
	err := newDownloader(srv).Download(ctx, srv.URL, 0, dest)
	require.ErrorIs(t, err, domain.ErrNetwork)
	assert.NoFileExists(t, dest)
}
