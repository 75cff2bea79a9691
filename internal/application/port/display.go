package port

import (
	"context"

	"github.com/bnema/tagwm/internal/domain/entity"
)

// Display is the windowing collaborator that positions real windows.
// The layout engine only tells it where clients go and which are visible.
type Display[C comparable] interface {
	// Configure moves and resizes a client.
	Configure(ctx context.Context, c C, g entity.Geometry) error

	// Map makes a client visible.
	Map(ctx context.Context, c C) error

	// Unmap hides a client without forgetting it.
	Unmap(ctx context.Context, c C) error

	// Focus gives input focus to a client.
	Focus(ctx context.Context, c C) error
}
