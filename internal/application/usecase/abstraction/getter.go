package abstraction

import (
	"context"
	"io"

	"blobd/internal/domain/model"
)

// Getter resolves a blob record and, for GET requests, a stream of its
// content. Callers close the stream.
type Getter interface {
	GetBlob(ctx context.Context, container, path string) (*model.Blob, error)
	OpenBlob(ctx context.Context, container, path string) (*model.Blob, io.ReadCloser, error)
}
