package usecase

import (
	"context"
	"errors"
	"net/http"

	"blobd/internal/domain/repository/database"
	"blobd/internal/domain/repository/minio"
)

type Deleter struct {
	retriever    database.Retriever
	dbRemover    database.Remover
	minioRemover minio.Remover
}

func NewDeleter(retriever database.Retriever, dbRemover database.Remover, minioRemover minio.Remover) *Deleter {
	return &Deleter{
		retriever:    retriever,
		dbRemover:    dbRemover,
		minioRemover: minioRemover,
	}
}

// DeleteBlob removes a blob from storage and then drops its metadata record.
func (d *Deleter) DeleteBlob(ctx context.Context, container, path string) (int, error) {
	if _, err := d.retriever.GetByPath(ctx, container, path); err != nil {
		return http.StatusNotFound, errors.New("blob not found")
	}

	if err := d.minioRemover.Remove(ctx, container, path); err != nil {
		return http.StatusInternalServerError, errors.New("failed to remove blob from storage")
	}

	if err := d.dbRemover.RemoveByPath(ctx, container, path); err != nil {
		return http.StatusInternalServerError, errors.New("couldn't remove blob record")
	}

	return http.StatusOK, nil
}
