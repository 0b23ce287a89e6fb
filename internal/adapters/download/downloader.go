// Package download streams remote archives and fonts to disk.
package download

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultTimeout bounds a single download when no client is supplied.
	DefaultTimeout = 300 * time.Second

	bufferSize   = 64 * 1024
	progressStep = 4 * 1024 * 1024
)

var _ ports.Downloader = (*Downloader)(nil)

// Downloader implements ports.Downloader. Content is streamed into a
// temporary sibling of the destination and renamed into place only after
// it has been verified, so a failed download never leaves a file at dest.
type Downloader struct {
	client    *http.Client
	userAgent string
	hasher    ports.Hasher
}

// NewDownloader creates a Downloader. A nil client gets DefaultTimeout.
func NewDownloader(client *http.Client, userAgent string, hasher ports.Hasher) *Downloader {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Downloader{client: client, userAgent: userAgent, hasher: hasher}
}

// Download implements ports.Downloader.
func (d *Downloader) Download(ctx context.Context, url string, expectedSize int64, dest string) error {
	return d.fetch(ctx, url, dest, func(written int64, _ string) error {
		if expectedSize > 0 && written != expectedSize {
			return domain.Classify(domain.ErrIntegrity, zerr.With(zerr.With(domain.With(domain.ErrSizeMismatch,
				"url", url), "expected", expectedSize), "actual", written))
		}
		return nil
	})
}

// DownloadVerified implements ports.Downloader.
func (d *Downloader) DownloadVerified(ctx context.Context, url, expectedHash, dest string) error {
	return d.fetch(ctx, url, dest, func(_ int64, sum string) error {
		if !strings.EqualFold(sum, expectedHash) {
			return domain.Classify(domain.ErrIntegrity, zerr.With(zerr.With(domain.With(domain.ErrHashMismatch,
				"url", url), "expected", expectedHash), "actual", sum))
		}
		return nil
	})
}

func (d *Downloader) fetch(
	ctx context.Context,
	url, dest string,
	verify func(written int64, sum string) error,
) (err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return domain.Classify(domain.ErrConfiguration,
			zerr.With(zerr.Wrap(err, domain.ErrDownloadRequestFailed.Error()), "url", url))
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return domain.Classify(domain.ErrNetwork,
			zerr.With(zerr.Wrap(err, domain.ErrDownloadRequestFailed.Error()), "url", url))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Classify(domain.ErrProtocol,
			zerr.With(domain.With(domain.ErrDownloadStatus, "url", url), "status", resp.StatusCode))
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return writeErr(err, dest)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(dest)+".*.tmp_download")
	if err != nil {
		return writeErr(err, dest)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	digest := d.hasher.NewDigest()
	progress := newProgress(ctx, resp.ContentLength)
	buf := make([]byte, bufferSize)

	written, err := io.CopyBuffer(io.MultiWriter(tmp, digest, progress), resp.Body, buf)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Classify(domain.ErrNetwork,
				zerr.With(zerr.Wrap(ctxErr, domain.ErrDownloadRequestFailed.Error()), "url", url))
		}
		return domain.Classify(domain.ErrNetwork,
			zerr.With(zerr.Wrap(err, domain.ErrDownloadRequestFailed.Error()), "url", url))
	}
	progress.done(written)

	if err = tmp.Sync(); err != nil {
		return writeErr(err, dest)
	}
	if err = tmp.Close(); err != nil {
		return writeErr(err, dest)
	}

	if err = verify(written, hex.EncodeToString(digest.Sum(nil))); err != nil {
		return err
	}

	if err = os.Rename(tmpPath, dest); err != nil {
		return writeErr(err, dest)
	}
	return nil
}

func writeErr(err error, dest string) error {
	return domain.Classify(domain.ErrFilesystem,
		zerr.With(zerr.Wrap(err, domain.ErrDownloadWriteFailed.Error()), "path", dest))
}

// progressWriter reports transferred bytes to the vertex carried by the context.
type progressWriter struct {
	out      io.Writer
	total    int64
	written  int64
	reported int64
}

func newProgress(ctx context.Context, total int64) *progressWriter {
	p := &progressWriter{out: io.Discard, total: total}
	if v, ok := ports.VertexFromContext(ctx); ok {
		p.out = v.Stdout()
	}
	return p
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.written += int64(len(b))
	if p.written-p.reported >= progressStep {
		p.reported = p.written
		p.report()
	}
	return len(b), nil
}

func (p *progressWriter) done(written int64) {
	p.written = written
	if p.reported != written {
		p.reported = written
		p.report()
	}
}

func (p *progressWriter) report() {
	//nolint:gosec // Sizes are never negative here
	if p.total > 0 {
		_, _ = fmt.Fprintf(p.out, "%s / %s\n", humanize.Bytes(uint64(p.written)), humanize.Bytes(uint64(p.total)))
		return
	}
	_, _ = fmt.Fprintf(p.out, "%s\n", humanize.Bytes(uint64(p.written))) //nolint:gosec // see above
}
