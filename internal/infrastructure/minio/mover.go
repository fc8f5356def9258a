package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"blobd/pkg/logger"
)

type Mover struct {
	minioClient *minio.Client
	cfg         *MoverConfig
}

func NewMover(minioClient *minio.Client, cfg *MoverConfig) *Mover {
	return &Mover{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Move relocates an object inside a container with a server-side copy
// followed by a delete of the source. A failed delete removes the fresh copy
// again so the object never exists under both paths.
func (m *Mover) Move(ctx context.Context, container, sourcePath, destinationPath string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(m.cfg.Timeout)*time.Millisecond)
	defer cancel()

	src := minio.CopySrcOptions{Bucket: container, Object: sourcePath}
	dst := minio.CopyDestOptions{Bucket: container, Object: destinationPath}

	if _, err := m.minioClient.CopyObject(ctx, dst, src); err != nil {
		return fmt.Errorf("object copy failed: %w", err)
	}

	err := m.minioClient.RemoveObject(ctx, container, sourcePath, minio.RemoveObjectOptions{})
	if err != nil {
		if rmErr := m.minioClient.RemoveObject(ctx, container, destinationPath,
			minio.RemoveObjectOptions{}); rmErr != nil {
			logger.Error("failed to cleanup copied object", "object", destinationPath, "err", rmErr)
		}

		return fmt.Errorf("source removal failed: %w", err)
	}

	return nil
}
