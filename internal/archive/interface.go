package archive

import (
	"context"
	"errors"
	"time"
)

// ErrNoSnapshots is returned when the archive holds no forecast snapshots yet
var ErrNoSnapshots = errors.New("no forecast snapshots archived")

// StorageClient defines the storage operations the forecast archive needs
type StorageClient interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores a file inside the snapshot folder for the timestamp
	StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error

	// GetFile retrieves a file from the specified path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// ListSnapshots lists stored snapshot file paths, newest first
	ListSnapshots(ctx context.Context, limit int) ([]string, error)

	// FileExists checks if a file exists at the specified path
	FileExists(ctx context.Context, filePath string) (bool, error)
}
