package steam

import (
	"context"

	"go.trai.ch/limbus/internal/core/ports"
)

// NewRuntimeWith creates a Runtime with injected process listing and launching.
func NewRuntimeWith(
	logger ports.Logger,
	listNames func(ctx context.Context) ([]string, error),
	start func(name string, args ...string) error,
) *Runtime {
	return &Runtime{logger: logger, listNames: listNames, start: start}
}
