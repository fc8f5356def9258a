package abstraction

import (
	"context"

	"blobd/internal/domain/dto"
	"blobd/internal/domain/entity"
)

type Mover interface {
	Move(ctx context.Context, req dto.MoveRequest) (entity.MoveResult, error)
}
