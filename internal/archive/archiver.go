package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"spotcast/internal/logger"
	"spotcast/internal/models"
)

// Archiver stores forecast snapshots and serves back the latest one.
// Only derived forecasts are archived; raw spots never are.
type Archiver struct {
	storage StorageClient
	log     *logger.Logger
}

// NewArchiver creates an archiver over the given storage backend
func NewArchiver(storage StorageClient) *Archiver {
	return &Archiver{
		storage: storage,
		log:     logger.GetGlobalLogger().WithComponent("archive"),
	}
}

// Store marshals a propagation report and writes it as a snapshot
func (a *Archiver) Store(ctx context.Context, report models.PropagationReport, timestamp time.Time) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal forecast snapshot: %w", err)
	}

	if err := a.storage.StoreFile(ctx, data, SnapshotFileName, timestamp); err != nil {
		return fmt.Errorf("failed to store forecast snapshot: %w", err)
	}

	a.log.Info("forecast snapshot archived", map[string]interface{}{
		"path": SnapshotFolderPath(timestamp) + "/" + SnapshotFileName,
		"size": len(data),
	})
	return nil
}

// Latest returns the raw JSON of the most recent snapshot, ErrNoSnapshots
// when the archive is empty
func (a *Archiver) Latest(ctx context.Context) ([]byte, error) {
	paths, err := a.storage.ListSnapshots(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	if len(paths) == 0 {
		return nil, ErrNoSnapshots
	}
	return a.storage.GetFile(ctx, paths[0])
}

// Close tears down the underlying storage client
func (a *Archiver) Close() error {
	return a.storage.Close()
}
