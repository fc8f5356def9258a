package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

type Getter struct {
	minioClient *minio.Client
	cfg         *GetterConfig
}

func NewGetter(minioClient *minio.Client, cfg *GetterConfig) *Getter {
	return &Getter{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Get opens a stored object for reading. Existence is checked up front so a
// missing object fails here instead of on the first read. The returned reader
// stays tied to the caller's context and must be closed by the caller.
func (g *Getter) Get(ctx context.Context, container, path string) (io.ReadCloser, error) {
	statCtx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.Timeout)*time.Millisecond)
	defer cancel()

	if _, err := g.minioClient.StatObject(statCtx, container, path, minio.StatObjectOptions{}); err != nil {
		return nil, fmt.Errorf("object not found: %w", err)
	}

	object, err := g.minioClient.GetObject(ctx, container, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("can't open object: %w", err)
	}

	return object, nil
}
