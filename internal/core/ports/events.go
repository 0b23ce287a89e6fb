package ports

import (
	"context"

	"go.trai.ch/limbus/internal/core/domain"
)

// EventSink receives fire-and-forget notifications.
//
//go:generate mockgen -source=events.go -destination=mocks/mock_events.go -package=mocks
type EventSink interface {
	Emit(ctx context.Context, event domain.Event) error
}
