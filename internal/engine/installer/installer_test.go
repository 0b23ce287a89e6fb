package installer_test

import (
	"bytes"
	"context"
	"crypto/md5" //nolint:gosec // matches the catalog digest
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/limbus/internal/adapters/cas"
	"go.trai.ch/limbus/internal/adapters/download"
	"go.trai.ch/limbus/internal/adapters/fs"
	"go.trai.ch/limbus/internal/adapters/telemetry"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports/mocks"
	"go.trai.ch/limbus/internal/engine/installer"
	"go.uber.org/mock/gomock"
)

type pipeline struct {
	downloader *mocks.MockDownloader
	extractor  *mocks.MockExtractor
	resolver   *mocks.MockFormatResolver
	committer  *mocks.MockCommitter
	fonts      *mocks.MockFontCache
	logger     *mocks.MockLogger
}

func newPipeline(t *testing.T, tempDir string) (*installer.Installer, *pipeline) {
	t.Helper()
	ctrl := gomock.NewController(t)
	p := &pipeline{
		downloader: mocks.NewMockDownloader(ctrl),
		extractor:  mocks.NewMockExtractor(ctrl),
		resolver:   mocks.NewMockFormatResolver(ctrl),
		committer:  mocks.NewMockCommitter(ctrl),
		fonts:      mocks.NewMockFontCache(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
	}
	p.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	inst := installer.New(p.downloader, p.extractor, p.resolver, p.committer, p.fonts,
		telemetry.NewNoOpTelemetry(), p.logger, tempDir)
	return inst, p
}

func record() domain.Localization {
	return domain.Localization{
		ID:      "en",
		Version: "2",
		URL:     "https://example.com/en.zip",
		Size:    1000,
		Format:  domain.ParseFormat("compatible"),
		Fonts: []domain.Font{
			{URL: "https://example.com/a.ttf", Hash: "aa", Name: "a.ttf"},
			{URL: "https://example.com/b.otf", Hash: "bb", Name: "b.otf"},
		},
	}
}

func TestInstaller_InstallRunsPipelineInOrder(t *testing.T) {
	t.Parallel()

	scratch := t.TempDir()
	inst, p := newPipeline(t, scratch)
	loc := record()

	var archive, extracted string
	gomock.InOrder(
		p.downloader.EXPECT().Download(gomock.Any(), loc.URL, int64(1000), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ int64, dest string) error {
				archive = dest
				return nil
			}),
		p.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, src, dest string) error {
				assert.Equal(t, archive, src)
				extracted = dest
				return nil
			}),
		p.resolver.EXPECT().Resolve(gomock.Any(), loc.Format).
			DoAndReturn(func(root string, _ domain.Format) (string, error) {
				assert.Equal(t, extracted, root)
				return filepath.Join(root, "payload"), nil
			}),
		p.committer.EXPECT().Commit("/game", "en", gomock.Any()).Return(nil),
		p.fonts.EXPECT().Place(gomock.Any(), "/game", "en", loc.Fonts[0]).Return(nil),
		p.fonts.EXPECT().Place(gomock.Any(), "/game", "en", loc.Fonts[1]).Return(nil),
	)

	require.NoError(t, inst.Install(context.Background(), "/game", loc))

	assert.Equal(t, domain.ArchiveFileName, filepath.Base(archive))
	entries, err := os.ReadDir(scratch)
	require.NoError(t, err)
	assert.Empty(t, entries, "scratch directory must be removed")
}

func TestInstaller_InstallStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	scratch := t.TempDir()
	inst, p := newPipeline(t, scratch)
	failure := domain.Classify(domain.ErrIntegrity, domain.ErrSizeMismatch)

	p.downloader.EXPECT().Download(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(failure)

	err := inst.Install(context.Background(), "/game", record())
	require.ErrorIs(t, err, domain.ErrIntegrity)

	entries, err := os.ReadDir(scratch)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInstaller_InstallUnrecognizedFormat(t *testing.T) {
	t.Parallel()

	scratch := t.TempDir()
	inst, _ := newPipeline(t, scratch)
	loc := record()
	loc.Format = domain.ParseFormat("legacy")

	// No expectations: the tag is rejected before anything is fetched.
	err := inst.Install(context.Background(), "/game", loc)
	require.ErrorIs(t, err, domain.ErrConfiguration)
	require.ErrorIs(t, err, domain.ErrUnrecognizedFormat)
	assert.ErrorContains(t, err, `"legacy"`)

	entries, err := os.ReadDir(scratch)
	require.NoError(t, err)
	assert.Empty(t, entries, "no scratch directory is created")
}

func TestInstaller_FontFailureAbortsRemainingFonts(t *testing.T) {
	t.Parallel()

	inst, p := newPipeline(t, t.TempDir())
	loc := record()

	p.downloader.EXPECT().Download(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	p.extractor.EXPECT().Extract(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	p.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return("/payload", nil)
	p.committer.EXPECT().Commit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	p.fonts.EXPECT().Place(gomock.Any(), gomock.Any(), gomock.Any(), loc.Fonts[0]).Return(errors.New("disk full"))

	require.Error(t, inst.Install(context.Background(), "/game", loc))
}

func TestInstaller_Uninstall(t *testing.T) {
	t.Parallel()

	inst, p := newPipeline(t, t.TempDir())
	p.committer.EXPECT().Remove("/game", "en").Return(nil)
	p.committer.EXPECT().Exists("/game", "en").Return(false)

	require.NoError(t, inst.Uninstall("/game", "en"))
	assert.False(t, inst.Installed("/game", "en"))
}

func buildArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestInstaller_InstallIsIdempotent(t *testing.T) {
	t.Parallel()

	archive := buildArchive(t, map[string]string{
		"LLC_en/StoryData/1.json":     `{"a":1}`,
		"LLC_en/BattleAnnouncer.json": `{}`,
		"LLC_en/localization.zip":     "nested",
		"readme.txt":                  "ignored",
	})
	fontBytes := []byte("glyphs")
	fontSum := md5.Sum(fontBytes) //nolint:gosec // see import

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/en.zip":
			_, _ = w.Write(archive)
		case "/font.ttf":
			_, _ = w.Write(fontBytes)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	hasher := fs.NewHasher(fs.NewWalker())
	dl := download.NewDownloader(srv.Client(), "Limbus Launcher", hasher)
	inst := installer.New(
		dl,
		fs.NewExtractor(log),
		fs.NewFormatResolver(),
		fs.NewCommitter(log),
		cas.NewFontCache(dl, hasher, log),
		telemetry.NewNoOpTelemetry(),
		log,
		t.TempDir(),
	)

	root := t.TempDir()
	loc := domain.Localization{
		ID:      "en",
		Version: "2",
		URL:     srv.URL + "/en.zip",
		Size:    int64(len(archive)),
		Format:  domain.ParseFormat("auto"),
		Fonts:   []domain.Font{{URL: srv.URL + "/font.ttf", Hash: hex.EncodeToString(fontSum[:]), Name: "main.ttf"}},
	}

	require.NoError(t, inst.Install(context.Background(), root, loc))
	first, err := hasher.Fingerprint(domain.LocalizationPath(root, "en"))
	require.NoError(t, err)

	require.NoError(t, inst.Install(context.Background(), root, loc))
	second, err := hasher.Fingerprint(domain.LocalizationPath(root, "en"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.FileExists(t, filepath.Join(domain.LocalizationPath(root, "en"), "StoryData", "1.json"))
	assert.FileExists(t, filepath.Join(domain.FontPath(root, "en"), "main.ttf"))
	assert.NoFileExists(t, filepath.Join(domain.LocalizationPath(root, "en"), domain.ArchiveFileName))
	assert.NoFileExists(t, filepath.Join(domain.LocalizationPath(root, "en"), "readme.txt"))
}
