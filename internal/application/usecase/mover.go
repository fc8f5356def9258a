package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"blobd/internal/domain/dto"
	"blobd/internal/domain/entity"
	"blobd/internal/domain/repository/broker"
	"blobd/internal/domain/repository/database"
	"blobd/internal/domain/repository/minio"
	"blobd/pkg/logger"
	"blobd/pkg/utils"
)

type Mover struct {
	publisher     broker.Publisher
	retriever     database.Retriever
	dbMover       database.Mover
	minioMover    minio.Mover
	publicAddress string
}

func NewMover(publisher broker.Publisher, retriever database.Retriever,
	dbMover database.Mover, minioMover minio.Mover, address string,
) *Mover {
	return &Mover{
		publisher:     publisher,
		retriever:     retriever,
		dbMover:       dbMover,
		minioMover:    minioMover,
		publicAddress: address,
	}
}

// Move relocates a blob to a new path inside the same container. The object
// is copied first, then the metadata record follows; if a later step fails
// the earlier ones are undone so storage and database stay in sync.
func (m *Mover) Move(ctx context.Context, req dto.MoveRequest) (entity.MoveResult, error) {
	if !utils.ValidContainerName(req.ContainerName) {
		return entity.MoveResult{Status: http.StatusBadRequest},
			fmt.Errorf("invalid container name: %s", req.ContainerName)
	}

	source, err := utils.CleanObjectPath(req.SourceBlobPath)
	if err != nil {
		return entity.MoveResult{Status: http.StatusBadRequest}, fmt.Errorf("invalid source path: %w", err)
	}

	destination, err := utils.CleanObjectPath(req.DestinationBlobPath)
	if err != nil {
		return entity.MoveResult{Status: http.StatusBadRequest}, fmt.Errorf("invalid destination path: %w", err)
	}

	if source == destination {
		return entity.MoveResult{Status: http.StatusBadRequest},
			errors.New("source and destination paths are the same")
	}

	blob, err := m.retriever.GetByPath(ctx, req.ContainerName, source)
	if err != nil {
		return entity.MoveResult{Status: http.StatusNotFound}, errors.New("blob not found")
	}

	if _, err := m.retriever.GetByPath(ctx, req.ContainerName, destination); err == nil {
		return entity.MoveResult{Status: http.StatusConflict},
			errors.New("a blob already exists at the destination path")
	}

	if err := m.minioMover.Move(ctx, req.ContainerName, source, destination); err != nil {
		return entity.MoveResult{Status: http.StatusInternalServerError},
			errors.New("failed to move blob in storage")
	}

	movedAt := time.Now()

	if err := m.dbMover.UpdatePath(ctx, req.ContainerName, source, destination, movedAt); err != nil {
		// put the object back where the record still says it is
		if revErr := m.minioMover.Move(ctx, req.ContainerName, destination, source); revErr != nil {
			logger.Error("failed to restore object after metadata update failed", "err", revErr)
		}

		return entity.MoveResult{Status: http.StatusInternalServerError},
			errors.New("couldn't update blob record")
	}

	err = m.publisher.Publish(ctx, entity.BlobEvent{
		Event:        entity.EventMoved,
		Container:    req.ContainerName,
		Path:         destination,
		PreviousPath: source,
		Sha256:       blob.Sha256,
		Size:         blob.Size,
		OccurredAt:   movedAt,
	})
	if err != nil {
		if revErr := m.dbMover.UpdatePath(ctx, req.ContainerName, destination, source, movedAt); revErr != nil {
			logger.Error("failed to restore blob record after publish failed", "err", revErr)
		}
		if revErr := m.minioMover.Move(ctx, req.ContainerName, destination, source); revErr != nil {
			logger.Error("failed to restore object after publish failed", "err", revErr)
		}

		return entity.MoveResult{Status: http.StatusInternalServerError},
			errors.New("failed to publish blob event for further processing")
	}

	return entity.MoveResult{
		URL:         utils.BlobURL(m.publicAddress, req.ContainerName, destination),
		Source:      source,
		Destination: destination,
		Moved:       movedAt,
		Status:      http.StatusOK,
	}, nil
}
