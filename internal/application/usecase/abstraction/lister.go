package abstraction

import (
	"context"
	"time"

	"blobd/internal/domain/dto"
)

type Lister interface {
	ListBlobs(ctx context.Context, container, directory string, since, until *time.Time) ([]dto.BlobDescriptor,
		int, error)
}
