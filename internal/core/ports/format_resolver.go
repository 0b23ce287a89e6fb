package ports

import "go.trai.ch/limbus/internal/core/domain"

// FormatResolver locates the payload directory inside an extracted archive.
//
//go:generate mockgen -source=format_resolver.go -destination=mocks/mock_format_resolver.go -package=mocks
type FormatResolver interface {
	Resolve(extractedRoot string, format domain.Format) (string, error)
}
