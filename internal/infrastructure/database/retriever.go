package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"blobd/internal/domain/model"
)

type BlobRetriever struct {
	db *Database
}

func NewBlobRetriever(db *Database) *BlobRetriever {
	return &BlobRetriever{db: db}
}

func (r *BlobRetriever) GetByPath(ctx context.Context, container, path string) (*model.Blob, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(BlobCollection)

	var blob model.Blob
	err := coll.FindOne(ctx, bson.M{"container": container, "path": path}).Decode(&blob)
	if err != nil {
		return nil, err
	}

	return &blob, nil
}
