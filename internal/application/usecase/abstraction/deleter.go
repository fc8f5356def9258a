package abstraction

import "context"

// Deleter removes a blob. The int return is the HTTP status the outcome maps
// to.
type Deleter interface {
	DeleteBlob(ctx context.Context, container, path string) (int, error)
}
