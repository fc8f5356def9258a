package database

import "context"

type Remover interface {
	RemoveByPath(ctx context.Context, container, path string) error
}
