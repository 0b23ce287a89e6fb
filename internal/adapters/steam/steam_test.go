package steam_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/limbus/internal/adapters/steam"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func makeGame(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, domain.GameDataDirName), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.GameExecutableName), nil, 0o600))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

const manifest = `"AppState"
{
	"appid"		"1973530"
	"name"		"Limbus Company"
	"installdir"		"LimbusCompanyDir"
}
`

func TestLocator_LocateInSecondaryLibrary(t *testing.T) {
	t.Parallel()

	steamRoot := t.TempDir()
	library := t.TempDir()

	writeFile(t, filepath.Join(steamRoot, "steamapps", "libraryfolders.vdf"), `"libraryfolders"
{
	"0"
	{
		"path"		"`+steamRoot+`"
	}
	"1"
	{
		"path"		"`+strings.ReplaceAll(library, `\`, `\\`)+`"
		"apps"
		{
			"1973530"		"123"
		}
	}
}
`)
	writeFile(t, filepath.Join(library, "steamapps", "appmanifest_1973530.acf"), manifest)
	game := filepath.Join(library, "steamapps", "common", "LimbusCompanyDir")
	makeGame(t, game)

	got, err := steam.NewLocatorWithRoots(steamRoot).Locate()
	require.NoError(t, err)
	assert.Equal(t, game, got)
}

func TestLocator_LocateFallsBackToDefaultDirectory(t *testing.T) {
	t.Parallel()

	steamRoot := t.TempDir()
	game := filepath.Join(steamRoot, "steamapps", "common", "Limbus Company")
	makeGame(t, game)

	got, err := steam.NewLocatorWithRoots(filepath.Join(t.TempDir(), "missing"), steamRoot).Locate()
	require.NoError(t, err)
	assert.Equal(t, game, got)
}

func TestLocator_LocateNotFound(t *testing.T) {
	t.Parallel()

	_, err := steam.NewLocatorWithRoots(t.TempDir()).Locate()
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, err, domain.ErrGameNotFound)
}

func TestLocator_Validate(t *testing.T) {
	t.Parallel()

	valid := t.TempDir()
	makeGame(t, valid)

	noData := t.TempDir()
	writeFile(t, filepath.Join(noData, domain.GameExecutableName), "")

	noExe := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(noExe, domain.GameDataDirName), 0o750))

	locator := steam.NewLocatorWithRoots()
	require.NoError(t, locator.Validate(valid))

	for _, dir := range []string{"", noData, noExe} {
		err := locator.Validate(dir)
		require.ErrorIs(t, err, domain.ErrNotFound, dir)
		assert.ErrorContains(t, err, domain.ErrInvalidGameDirectory.Error())
	}
}

func TestRuntime_IsRunning(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		names []string
		want  bool
	}{
		{name: "full name", names: []string{"bash", "LimbusCompany.exe"}, want: true},
		{name: "truncated name", names: []string{"LimbusCompany.e"}, want: true},
		{name: "other processes", names: []string{"LimbusCompanyLauncher", "steam"}, want: false},
		{name: "empty table", names: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rt := steam.NewRuntimeWith(nil, func(context.Context) ([]string, error) {
				return tt.names, nil
			}, nil)

			got, err := rt.IsRunning(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuntime_IsRunningListFailure(t *testing.T) {
	t.Parallel()

	rt := steam.NewRuntimeWith(nil, func(context.Context) ([]string, error) {
		return nil, errors.New("permission denied")
	}, nil)

	_, err := rt.IsRunning(context.Background())
	require.ErrorIs(t, err, domain.ErrFilesystem)
	assert.ErrorContains(t, err, domain.ErrProcessListFailed.Error())
}

func TestRuntime_Launch(t *testing.T) {
	t.Parallel()

	var calls [][]string
	rt := steam.NewRuntimeWith(nil, nil, func(name string, args ...string) error {
		calls = append(calls, append([]string{name}, args...))
		return nil
	})

	require.NoError(t, rt.Launch(context.Background()))
	require.Len(t, calls, 1)
	assert.Equal(t, "steam://run/1973530", calls[0][len(calls[0])-1])
}

func TestRuntime_LaunchFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).MinTimes(1)

	rt := steam.NewRuntimeWith(logger, nil, func(string, ...string) error {
		return errors.New("executable file not found")
	})

	err := rt.Launch(context.Background())
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, domain.ErrGameLaunchFailed.Error())
}

func TestRuntime_IsRunningReadsProcessTable(t *testing.T) {
	t.Parallel()

	rt := steam.NewRuntime(nil)
	running, err := rt.IsRunning(context.Background())
	require.NoError(t, err)
	assert.False(t, running)
}
