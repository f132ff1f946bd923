package ports

import (
	"context"

	"go.trai.ch/ninjify/internal/core/domain"
)

// Stamper records fingerprints of the generated artifacts so a wrapping
// build system can decide whether regeneration is needed.
//
//go:generate go run go.uber.org/mock/mockgen -source=stamper.go -destination=mocks/mock_stamper.go -package=mocks
type Stamper interface {
	// Stamp fingerprints the artifacts named by cfg and writes the stamp
	// file next to them.
	Stamp(ctx context.Context, cfg domain.Config) error
}
