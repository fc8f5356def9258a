package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"blobd/internal/domain/dto"
	"blobd/internal/domain/entity"
	"blobd/internal/domain/model"
	"blobd/internal/domain/repository/broker"
	"blobd/internal/domain/repository/database"
	"blobd/internal/domain/repository/minio"
	"blobd/pkg/logger"
	"blobd/pkg/utils"
)

type Uploader struct {
	publisher     broker.Publisher
	retriever     database.Retriever
	writer        database.Writer
	dbRemover     database.Remover
	minioUploader minio.Uploader
	minioRemover  minio.Remover
	publicAddress string
}

func NewUploader(publisher broker.Publisher, retriever database.Retriever, writer database.Writer,
	minioUploader minio.Uploader, minioRemover minio.Remover, dbRemover database.Remover, address string,
) *Uploader {
	return &Uploader{
		publisher:     publisher,
		retriever:     retriever,
		writer:        writer,
		dbRemover:     dbRemover,
		minioUploader: minioUploader,
		minioRemover:  minioRemover,
		publicAddress: address,
	}
}

// Upload decodes the request payload, stores the object and its metadata
// record, and announces the new blob on the event stream. Partial failures
// roll back whatever was already written.
func (u *Uploader) Upload(ctx context.Context, req dto.UploadRequest) (entity.UploadResult, error) {
	if !utils.ValidContainerName(req.ContainerName) {
		return entity.UploadResult{Status: http.StatusBadRequest},
			fmt.Errorf("invalid container name: %s", req.ContainerName)
	}

	path, err := utils.JoinObjectPath(req.Directory, req.BlobName)
	if err != nil {
		return entity.UploadResult{Status: http.StatusBadRequest}, fmt.Errorf("invalid blob path: %w", err)
	}

	content, err := base64.StdEncoding.DecodeString(req.FileBase64)
	if err != nil {
		return entity.UploadResult{Status: http.StatusBadRequest}, errors.New("fileBase64 is not valid base64")
	}
	if len(content) == 0 {
		return entity.UploadResult{Status: http.StatusBadRequest}, errors.New("decoded content is empty")
	}

	detectedType := mimetype.Detect(content).String()
	if !strings.Contains(detectedType, req.MimeType) {
		return entity.UploadResult{Status: http.StatusBadRequest},
			fmt.Errorf("invalid file type: detected %s, declared %s", detectedType, req.MimeType)
	}

	if _, err := u.retriever.GetByPath(ctx, req.ContainerName, path); err == nil {
		return entity.UploadResult{Status: http.StatusConflict},
			errors.New("a blob already exists at this path")
	}

	result, err := u.minioUploader.Upload(ctx, req.ContainerName, path, content, req.MimeType)
	if err != nil {
		return entity.UploadResult{Status: http.StatusInternalServerError},
			errors.New("failed to store blob")
	}

	directory, name := utils.SplitObjectPath(path)
	uploadedAt := time.Now()

	err = u.writer.Write(ctx, &model.Blob{
		ID:         uuid.NewString(),
		Container:  req.ContainerName,
		Path:       path,
		Directory:  directory,
		Name:       name,
		MimeType:   result.MimeType,
		Size:       result.Size,
		Sha256:     result.Sha256,
		UploadTime: uploadedAt,
		MovedTime:  nil,
		VerifiedAt: nil,
	})
	if err != nil {
		if rmErr := u.minioRemover.Remove(ctx, req.ContainerName, path); rmErr != nil {
			logger.Error("failed to remove object after metadata write failed", "err", rmErr)
		}

		return entity.UploadResult{Status: http.StatusInternalServerError},
			errors.New("couldn't add blob to database")
	}

	err = u.publisher.Publish(ctx, entity.BlobEvent{
		Event:      entity.EventUploaded,
		Container:  req.ContainerName,
		Path:       path,
		Sha256:     result.Sha256,
		Size:       result.Size,
		OccurredAt: uploadedAt,
	})
	if err != nil {
		if rmErr := u.minioRemover.Remove(ctx, req.ContainerName, path); rmErr != nil {
			logger.Error("failed to remove object after publish failed", "err", rmErr)
		}
		if rmErr := u.dbRemover.RemoveByPath(ctx, req.ContainerName, path); rmErr != nil {
			logger.Error("failed to remove blob record after publish failed", "err", rmErr)
		}

		return entity.UploadResult{Status: http.StatusInternalServerError},
			errors.New("failed to publish blob event for further processing")
	}

	return entity.UploadResult{
		URL:      utils.BlobURL(u.publicAddress, req.ContainerName, path),
		Path:     path,
		Sha256:   result.Sha256,
		MimeType: result.MimeType,
		Size:     result.Size,
		Uploaded: uploadedAt,
		Status:   http.StatusCreated,
	}, nil
}
