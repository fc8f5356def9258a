package abstraction

import (
	"context"

	"blobd/internal/domain/dto"
	"blobd/internal/domain/entity"
)

type Uploader interface {
	Upload(ctx context.Context, req dto.UploadRequest) (entity.UploadResult, error)
}
