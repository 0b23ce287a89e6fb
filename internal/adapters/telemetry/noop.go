// Package telemetry holds telemetry implementations that do not need a recorder backend.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/limbus/internal/core/ports"
)

var _ ports.Telemetry = (*NoOpTelemetry)(nil)

// NoOpTelemetry is a no-op implementation of ports.Telemetry.
type NoOpTelemetry struct{}

// NewNoOpTelemetry creates a new NoOpTelemetry.
func NewNoOpTelemetry() *NoOpTelemetry {
	return &NoOpTelemetry{}
}

// Record returns a vertex that discards everything written to it.
func (t *NoOpTelemetry) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &NoOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout discards.
func (v *NoOpVertex) Stdout() io.Writer { return io.Discard }

// Stderr discards.
func (v *NoOpVertex) Stderr() io.Writer { return io.Discard }

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}
