package broker

import (
	"context"

	"blobd/internal/domain/entity"
)

type Publisher interface {
	Publish(ctx context.Context, event entity.BlobEvent) error
}
