package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"blobd/pkg/utils"
)

type BlobMover struct {
	db *Database
}

func NewBlobMover(db *Database) *BlobMover {
	return &BlobMover{db: db}
}

// UpdatePath repoints a blob record from oldPath to newPath, keeping the
// derived directory and name fields in sync with the new path.
func (m *BlobMover) UpdatePath(ctx context.Context, container, oldPath, newPath string, movedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, m.db.QueryTimeout)
	defer cancel()

	coll := m.db.Client.Database(m.db.DBName).Collection(BlobCollection)

	directory, name := utils.SplitObjectPath(newPath)

	res, err := coll.UpdateOne(ctx,
		bson.M{"container": container, "path": oldPath},
		bson.M{"$set": bson.M{
			"path":       newPath,
			"directory":  directory,
			"name":       name,
			"moved_time": movedAt,
		}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
