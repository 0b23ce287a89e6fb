package steam

import (
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
	"go.trai.ch/limbus/internal/core/domain"
	"go.trai.ch/limbus/internal/core/ports"
	"go.trai.ch/zerr"
)

// processPrefix matches the game process on every platform. Some process
// tables truncate names to 15 characters.
const processPrefix = "LimbusCompany.e"

var _ ports.GameRuntime = (*Runtime)(nil)

// Runtime implements ports.GameRuntime.
type Runtime struct {
	logger    ports.Logger
	listNames func(ctx context.Context) ([]string, error)
	start     func(name string, args ...string) error
}

// NewRuntime creates a Runtime that inspects the process table and launches
// through the platform URL opener.
func NewRuntime(logger ports.Logger) *Runtime {
	return &Runtime{logger: logger, listNames: processNames, start: startDetached}
}

// IsRunning reports whether a game process is alive.
func (r *Runtime) IsRunning(ctx context.Context) (bool, error) {
	names, err := r.listNames(ctx)
	if err != nil {
		return false, domain.Classify(domain.ErrFilesystem, zerr.Wrap(err, domain.ErrProcessListFailed.Error()))
	}
	for _, name := range names {
		if strings.HasPrefix(name, processPrefix) {
			return true, nil
		}
	}
	return false, nil
}

// Launch asks Steam to start the game.
func (r *Runtime) Launch(_ context.Context) error {
	uri := "steam://run/" + domain.SteamAppID

	var err error
	for _, cmd := range launchCommands(uri) {
		if err = r.start(cmd[0], cmd[1:]...); err == nil {
			return nil
		}
		r.logger.Debug("launcher " + cmd[0] + " failed: " + err.Error())
	}
	return domain.Classify(domain.ErrNotFound, zerr.With(zerr.Wrap(err, domain.ErrGameLaunchFailed.Error()), "uri", uri))
}

func launchCommands(uri string) [][]string {
	switch runtime.GOOS {
	case "windows":
		return [][]string{{"cmd", "/C", "start", uri}}
	case "darwin":
		return [][]string{{"open", uri}}
	default:
		return [][]string{{"xdg-open", uri}, {"steam", uri}}
	}
}

func processNames(ctx context.Context) ([]string, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(procs))
	for _, p := range procs {
		// Processes may exit between listing and inspection.
		if name, err := p.NameWithContext(ctx); err == nil {
			names = append(names, name)
		}
	}
	return names, nil
}

// startDetached starts the opener without waiting for the game.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...) //nolint:gosec // fixed launcher commands
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
