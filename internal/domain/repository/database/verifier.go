package database

import (
	"context"
	"time"
)

// Verifier stamps records the integrity worker has checked.
type Verifier interface {
	MarkVerified(ctx context.Context, container, path string, verifiedAt time.Time) error
}
