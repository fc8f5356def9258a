package database

import (
	"context"
	"time"
)

// Mover rewrites the path of an existing record after the object moved in
// storage.
type Mover interface {
	UpdatePath(ctx context.Context, container, oldPath, newPath string, movedAt time.Time) error
}
