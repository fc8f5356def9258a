package database

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blobd/internal/domain/model"
)

type BlobLister struct {
	db *Database
}

func NewBlobLister(db *Database) *BlobLister {
	return &BlobLister{db: db}
}

// GetByContainer returns the blobs of a container, newest first. A non-empty
// directory narrows the result to that directory and everything below it.
func (l *BlobLister) GetByContainer(ctx context.Context, container, directory string,
	since, until *time.Time,
) ([]model.Blob, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	coll := l.db.Client.Database(l.db.DBName).Collection(BlobCollection)

	filter := bson.M{"container": container}

	if directory != "" {
		filter["$or"] = bson.A{
			bson.M{"directory": directory},
			bson.M{"directory": bson.M{"$regex": "^" + regexp.QuoteMeta(directory) + "/"}},
		}
	}

	if since != nil || until != nil {
		uploadedFilter := bson.M{}
		if since != nil {
			uploadedFilter["$gte"] = *since
		}
		if until != nil {
			uploadedFilter["$lte"] = *until
		}
		filter["upload_time"] = uploadedFilter
	}

	cursor, err := coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "upload_time", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blobs []model.Blob
	if err = cursor.All(ctx, &blobs); err != nil {
		return nil, err
	}

	return blobs, nil
}
