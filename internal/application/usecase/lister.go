package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"blobd/internal/domain/dto"
	"blobd/internal/domain/repository/database"
	"blobd/pkg/utils"
)

type Lister struct {
	lister        database.Lister
	publicAddress string
}

func NewLister(lister database.Lister, address string) *Lister {
	return &Lister{
		lister:        lister,
		publicAddress: address,
	}
}

// ListBlobs returns descriptors for the blobs of a container, optionally
// narrowed to a directory prefix and an upload-time window.
func (l *Lister) ListBlobs(ctx context.Context, container, directory string,
	since, until *time.Time,
) ([]dto.BlobDescriptor, int, error) {
	if !utils.ValidContainerName(container) {
		return nil, http.StatusBadRequest, errors.New("invalid container name")
	}

	if directory != "" {
		cleaned, err := utils.CleanObjectPath(directory)
		if err != nil {
			return nil, http.StatusBadRequest, errors.New("invalid directory")
		}
		directory = cleaned
	}

	blobs, err := l.lister.GetByContainer(ctx, container, directory, since, until)
	if err != nil {
		return nil, http.StatusInternalServerError, errors.New("couldn't list blobs")
	}

	descriptors := make([]dto.BlobDescriptor, 0, len(blobs))
	for _, blob := range blobs {
		descriptors = append(descriptors, dto.BlobDescriptor{
			URL:           utils.BlobURL(l.publicAddress, blob.Container, blob.Path),
			ContainerName: blob.Container,
			BlobPath:      blob.Path,
			Sha256:        blob.Sha256,
			Size:          blob.Size,
			MimeType:      blob.MimeType,
			Uploaded:      blob.UploadTime.Unix(),
		})
	}

	return descriptors, http.StatusOK, nil
}
