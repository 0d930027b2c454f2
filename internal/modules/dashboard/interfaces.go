package dashboard

import (
	"context"

	"equiprent/internal/repository"
)

// SnapshotSource hands out a consistent copy of the tables to aggregate.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*repository.Snapshot, error)
}
