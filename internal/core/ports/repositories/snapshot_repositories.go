package repositories

import "context"

// SnapshotStore is a key-value store holding full JSON array snapshots under fixed keys.
type SnapshotStore interface {
	// Load returns the raw value for key and whether it was present.
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Save overwrites the value for key in full.
	Save(ctx context.Context, key string, value []byte) error
}
