package minio

import (
	"context"

	"blobd/internal/domain/entity"
)

type Uploader interface {
	Upload(ctx context.Context, container, path string, content []byte, declaredType string) (entity.PutResult, error)
}
