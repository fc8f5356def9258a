package minio

import "context"

type Remover interface {
	Remove(ctx context.Context, container, path string) error
}
