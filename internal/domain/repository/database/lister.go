package database

import (
	"context"
	"time"

	"blobd/internal/domain/model"
)

// Lister lists blob records for a container, optionally narrowed to a
// directory prefix and an upload-time window.
type Lister interface {
	GetByContainer(ctx context.Context, container, directory string, since, until *time.Time) ([]model.Blob, error)
}
