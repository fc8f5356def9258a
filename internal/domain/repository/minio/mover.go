package minio

import "context"

// Mover relocates an object inside a container (copy to the destination key,
// then remove the source key).
type Mover interface {
	Move(ctx context.Context, container, sourcePath, destinationPath string) error
}
