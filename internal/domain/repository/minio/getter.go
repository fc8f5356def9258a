package minio

import (
	"context"
	"io"
)

type Getter interface {
	Get(ctx context.Context, container, path string) (io.ReadCloser, error)
}
