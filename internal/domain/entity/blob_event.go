package entity

import (
	"encoding/json"
	"time"
)

const (
	EventUploaded = "uploaded"
	EventMoved    = "moved"
)

// BlobEvent is the message published to the broker stream after a blob
// changes. Downstream consumers (the integrity worker among them) decode it
// from JSON.
type BlobEvent struct {
	Event        string    `json:"event"`
	Container    string    `json:"container"`
	Path         string    `json:"path"`
	PreviousPath string    `json:"previous_path,omitempty"`
	Sha256       string    `json:"sha256"`
	Size         int64     `json:"size"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func (e BlobEvent) Encode() (string, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}

func DecodeBlobEvent(body string) (BlobEvent, error) {
	var event BlobEvent
	if err := json.Unmarshal([]byte(body), &event); err != nil {
		return BlobEvent{}, err
	}

	return event, nil
}
