package database

import (
	"context"

	"blobd/internal/domain/model"
)

type Writer interface {
	Write(ctx context.Context, blob *model.Blob) error
}
