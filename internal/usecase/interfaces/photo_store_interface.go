package interfaces

import (
	"context"
	"errors"
	"io"
)

// ErrPhotoNotFound is returned by Open when no blob exists for the key.
var ErrPhotoNotFound = errors.New("photo not found")

// IPhotoStore abstracts the blob store holding freight photos. Save
// returns the stable reference persisted on the request; Open serves
// the blob back by that reference.
type IPhotoStore interface {
	Save(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
}
