package entity

import "time"

// UploadResult is what the upload usecase hands back to the presentation
// layer. Status carries the HTTP status the outcome maps to.
type UploadResult struct {
	URL      string
	Path     string
	Sha256   string
	MimeType string
	Size     int64
	Uploaded time.Time
	Status   int
}

// MoveResult is the move usecase counterpart. Source and Destination hold
// the canonical forms of the requested paths.
type MoveResult struct {
	URL         string
	Source      string
	Destination string
	Moved       time.Time
	Status      int
}

// PutResult is what the storage layer reports after writing an object.
type PutResult struct {
	Sha256   string
	MimeType string
	Size     int64
}
