package minio

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"blobd/internal/domain/entity"
)

type Uploader struct {
	minioClient *minio.Client
	cfg         *UploaderConfig
}

func NewUploader(minioClient *minio.Client, cfg *UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Upload writes content to the container under the given path, creating the
// container on first use, and returns the checksum of what was stored.
func (u *Uploader) Upload(ctx context.Context, container, path string,
	content []byte, contentType string,
) (entity.PutResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	if err := u.ensureContainer(ctx, container); err != nil {
		return entity.PutResult{}, err
	}

	hash := sha256.Sum256(content)
	size := int64(len(content))

	_, err := u.minioClient.PutObject(ctx, container, path, bytes.NewReader(content), size,
		minio.PutObjectOptions{
			ContentType: contentType,
		})
	if err != nil {
		return entity.PutResult{}, fmt.Errorf("object upload failed: %w", err)
	}

	return entity.PutResult{
		Sha256:   hex.EncodeToString(hash[:]),
		MimeType: contentType,
		Size:     size,
	}, nil
}

func (u *Uploader) ensureContainer(ctx context.Context, container string) error {
	exists, err := u.minioClient.BucketExists(ctx, container)
	if err != nil {
		return fmt.Errorf("can't check container %s: %w", container, err)
	}
	if exists {
		return nil
	}

	if err := u.minioClient.MakeBucket(ctx, container, minio.MakeBucketOptions{}); err != nil {
		// a concurrent upload may have created it in between
		exists, checkErr := u.minioClient.BucketExists(ctx, container)
		if checkErr == nil && exists {
			return nil
		}

		return fmt.Errorf("can't create container %s: %w", container, err)
	}

	return nil
}
