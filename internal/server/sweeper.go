package server

import (
	"context"

	"github.com/preston-bernstein/pickup-teams-service/internal/sweeper"
)

// Sweeper defines the background session expiry the server drives.
type Sweeper interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() sweeper.Status
}
