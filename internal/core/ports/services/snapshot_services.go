package services

import (
	"context"

	"github.com/SscSPs/roundup_ledger/internal/core/ports/repositories"
)

// SnapshotCounts reports how many rows of each kind a snapshot operation touched.
type SnapshotCounts struct {
	Accounts    int
	Locations   int
	Departments int
}

// SnapshotSvc moves the chart and tags between the database and a key-value snapshot.
type SnapshotSvc interface {
	Export(ctx context.Context, store repositories.SnapshotStore) (SnapshotCounts, error)
	Import(ctx context.Context, store repositories.SnapshotStore, userID string) (SnapshotCounts, error)
}
