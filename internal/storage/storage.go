package storage

import (
	"context"
)

// BackupStorage defines the interface for shipping backup documents to an
// offsite object store.
type BackupStorage interface {
	// PutBackup writes one backup document under the given object key.
	PutBackup(ctx context.Context, objectKey string, body []byte) error
}
