package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

type BlobRemover struct {
	db *Database
}

func NewBlobRemover(db *Database) *BlobRemover {
	return &BlobRemover{db: db}
}

func (r *BlobRemover) RemoveByPath(ctx context.Context, container, path string) error {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(BlobCollection)

	_, err := coll.DeleteOne(ctx, bson.M{"container": container, "path": path})

	return err
}
