package storage

import (
	"context"
	"fmt"

	portssvc "github.com/SscSPs/visa_office_app/internal/core/ports/services"
	"github.com/SscSPs/visa_office_app/internal/platform/config"
)

// New returns the BlobStore selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (portssvc.BlobStore, error) {
	switch cfg.Driver {
	case config.StorageDriverS3:
		store, err := NewS3Store(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return store, nil
	case config.StorageDriverLocal, "":
		return NewLocalStore(cfg.LocalDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
