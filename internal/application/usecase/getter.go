package usecase

import (
	"context"
	"errors"
	"io"

	"blobd/internal/domain/model"
	"blobd/internal/domain/repository/database"
	"blobd/internal/domain/repository/minio"
)

type Getter struct {
	retriever   database.Retriever
	minioGetter minio.Getter
}

func NewGetter(retriever database.Retriever, minioGetter minio.Getter) *Getter {
	return &Getter{
		retriever:   retriever,
		minioGetter: minioGetter,
	}
}

// GetBlob looks up the metadata record for a blob.
func (g *Getter) GetBlob(ctx context.Context, container, path string) (*model.Blob, error) {
	blob, err := g.retriever.GetByPath(ctx, container, path)
	if err != nil {
		return nil, errors.New("blob not found")
	}

	return blob, nil
}

// OpenBlob returns the metadata record together with a reader over the stored
// content. The caller owns the reader and must close it.
func (g *Getter) OpenBlob(ctx context.Context, container, path string) (*model.Blob, io.ReadCloser, error) {
	blob, err := g.retriever.GetByPath(ctx, container, path)
	if err != nil {
		return nil, nil, errors.New("blob not found")
	}

	reader, err := g.minioGetter.Get(ctx, container, path)
	if err != nil {
		return nil, nil, errors.New("blob content unavailable")
	}

	return blob, reader, nil
}
