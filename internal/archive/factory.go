package archive

import (
	"context"
	"fmt"

	"spotcast/internal/config"
)

// DeploymentMode selects the archive backend
type DeploymentMode string

const (
	DeploymentLocal DeploymentMode = "local"
	DeploymentGCS   DeploymentMode = "gcs"
)

// NewStorageClient creates an archive storage client for the configured
// deployment mode
func NewStorageClient(ctx context.Context, cfg *config.Config) (StorageClient, error) {
	switch DeploymentMode(cfg.DeploymentMode) {
	case DeploymentLocal:
		localClient, err := NewLocalStorageClient(cfg.LocalArchiveDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local archive: %w", err)
		}
		return localClient, nil

	case DeploymentGCS:
		gcsClient, err := NewGCSClient(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS archive: %w", err)
		}
		return gcsClient, nil

	default:
		return nil, fmt.Errorf("unsupported deployment mode: %s", cfg.DeploymentMode)
	}
}
