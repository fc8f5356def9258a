package database

import (
	"context"

	"blobd/internal/domain/model"
)

type BlobWriter struct {
	db *Database
}

func NewBlobWriter(db *Database) *BlobWriter {
	return &BlobWriter{db: db}
}

func (w *BlobWriter) Write(ctx context.Context, blob *model.Blob) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(BlobCollection)

	_, err := coll.InsertOne(ctx, blob)

	return err
}
