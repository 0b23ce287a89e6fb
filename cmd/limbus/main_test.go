package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/limbus/internal/adapters/events"
	"go.trai.ch/limbus/internal/adapters/telemetry"
	"go.trai.ch/limbus/internal/app"
	"go.trai.ch/limbus/internal/core/ports/mocks"
	"go.trai.ch/limbus/internal/engine/installer"
	"go.trai.ch/limbus/internal/engine/keylock"
	"go.trai.ch/limbus/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	settings *mocks.MockSettingsStore
	logger   *mocks.MockLogger
}

// newApp builds a real App whose collaborators are all mocks.
func newApp(t *testing.T) (*app.App, *appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &appMocks{
		settings: mocks.NewMockSettingsStore(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	inst := installer.New(
		mocks.NewMockDownloader(ctrl),
		mocks.NewMockExtractor(ctrl),
		mocks.NewMockFormatResolver(ctrl),
		mocks.NewMockCommitter(ctrl),
		mocks.NewMockFontCache(ctrl),
		telemetry.NewNoOpTelemetry(),
		m.logger,
		t.TempDir(),
	)
	bus := events.NewBus()
	orch := orchestrator.New(
		m.settings,
		mocks.NewMockMetadataStore(ctrl),
		mocks.NewMockCatalogFetcher(ctrl),
		mocks.NewMockGameLocator(ctrl),
		mocks.NewMockGameRuntime(ctrl),
		mocks.NewMockGameConfig(ctrl),
		bus,
		inst,
		keylock.NewRegistry(),
		m.logger,
	)

	return app.New(orch, mocks.NewMockReleaseChecker(ctrl), mocks.NewMockHasher(ctrl), bus, m.logger), m
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	application, m := newApp(t)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: m.logger,
		}, func() {}, nil
	}

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "limbus version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	application, m := newApp(t)

	loadErr := errors.New("settings unreadable")
	m.settings.EXPECT().Load().Return(nil, loadErr)
	m.logger.EXPECT().Error(loadErr)

	cleaned := false
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: m.logger,
		}, func() { cleaned = true }, nil
	}

	exitCode := run(context.Background(), []string{"install", "en"}, new(bytes.Buffer), new(bytes.Buffer), provider)

	assert.Equal(t, 1, exitCode)
	assert.True(t, cleaned)
}
