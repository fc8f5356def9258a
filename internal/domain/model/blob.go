package model

import "time"

// Blob is the metadata record kept for every stored object. A blob is
// addressed by (container, path); the path always includes the directory
// prefix.
type Blob struct {
	ID         string     `bson:"_id"`
	Container  string     `bson:"container"`
	Path       string     `bson:"path"`
	Directory  string     `bson:"directory"` // empty for root-level blobs
	Name       string     `bson:"name"`
	MimeType   string     `bson:"mime_type"`
	Size       int64      `bson:"size"`
	Sha256     string     `bson:"sha256"`
	UploadTime time.Time  `bson:"upload_time"`
	MovedTime  *time.Time `bson:"moved_time"`  // nil until the blob is first moved
	VerifiedAt *time.Time `bson:"verified_at"` // nil until the integrity worker checks it
}
