package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const BlobCollection = "blobs"

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			UseJSONStructTags: true,
			NilSliceAsEmpty:   true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initBlobCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func initBlobCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": BlobCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "container", "path", "name", "mime_type", "size", "sha256", "upload_time"},
			"properties": bson.M{
				"_id": bson.M{"bsonType": "string"},
				"container": bson.M{
					"bsonType": "string",
					"pattern":  "^[a-z0-9][a-z0-9.-]{1,61}[a-z0-9]$",
				},
				"path": bson.M{
					"bsonType":  "string",
					"minLength": 1,
				},
				"directory": bson.M{"bsonType": "string"},
				"name": bson.M{
					"bsonType":  "string",
					"minLength": 1,
				},
				"mime_type": bson.M{"bsonType": "string"},
				"size":      bson.M{"bsonType": "long"},
				"sha256": bson.M{
					"bsonType": "string",
					"pattern":  "^[a-fA-F0-9]{64}$",
				},
				"upload_time": bson.M{"bsonType": "date"},
				"moved_time":  bson.M{"bsonType": []string{"date", "null"}},
				"verified_at": bson.M{"bsonType": []string{"date", "null"}},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, BlobCollection, collOpts)
	if err != nil {
		return err
	}

	coll := db.Client.Database(db.DBName).Collection(BlobCollection)

	// a blob is addressed by (container, path), so that pair is unique
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "container", Value: 1}, {Key: "path", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "container", Value: 1}, {Key: "upload_time", Value: -1}},
	})

	return err
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
