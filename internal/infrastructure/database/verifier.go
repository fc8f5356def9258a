package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BlobVerifier struct {
	db *Database
}

func NewBlobVerifier(db *Database) *BlobVerifier {
	return &BlobVerifier{db: db}
}

func (v *BlobVerifier) MarkVerified(ctx context.Context, container, path string, verifiedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, v.db.QueryTimeout)
	defer cancel()

	coll := v.db.Client.Database(v.db.DBName).Collection(BlobCollection)

	res, err := coll.UpdateOne(ctx,
		bson.M{"container": container, "path": path},
		bson.M{"$set": bson.M{"verified_at": verifiedAt}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
