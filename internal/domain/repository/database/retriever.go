package database

import (
	"context"

	"blobd/internal/domain/model"
)

type Retriever interface {
	GetByPath(ctx context.Context, container, path string) (*model.Blob, error)
}
