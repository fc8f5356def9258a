package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"blobd/internal/domain/entity"
	"blobd/internal/domain/repository/broker"
	"blobd/internal/domain/repository/database"
	"blobd/internal/domain/repository/minio"
	"blobd/pkg/logger"
)

// Auditor consumes blob events and verifies that the stored content still
// matches the checksum recorded at upload time.
type Auditor struct {
	receiver    broker.Receiver
	retriever   database.Retriever
	verifier    database.Verifier
	minioGetter minio.Getter
}

func NewAuditor(receiver broker.Receiver, retriever database.Retriever,
	verifier database.Verifier, minioGetter minio.Getter,
) *Auditor {
	return &Auditor{
		receiver:    receiver,
		retriever:   retriever,
		verifier:    verifier,
		minioGetter: minioGetter,
	}
}

// Run blocks consuming events until the context is canceled. Every message is
// acknowledged, audited or not, so a corrupt blob can't wedge the stream.
func (a *Auditor) Run(ctx context.Context, consumerName string) error {
	messages, err := a.receiver.Messages(ctx, consumerName)
	if err != nil {
		return fmt.Errorf("can't consume blob events: %w", err)
	}

	logger.Info("auditor started", "consumer", consumerName)

	for message := range messages {
		a.process(ctx, message)
	}

	return nil
}

func (a *Auditor) process(ctx context.Context, message broker.Message) {
	defer func() {
		if err := message.Ack(); err != nil {
			logger.Error("failed to ack blob event", "err", err)
		}
	}()

	event, err := entity.DecodeBlobEvent(message.Body())
	if err != nil {
		logger.Error("discarding malformed blob event", "err", err)

		return
	}

	switch event.Event {
	case entity.EventUploaded, entity.EventMoved:
	default:
		logger.Warn("discarding blob event of unknown kind", "event", event.Event)

		return
	}

	if err := a.audit(ctx, event); err != nil {
		logger.Error("blob audit failed", "container", event.Container, "path", event.Path, "err", err)

		return
	}

	logger.Info("blob verified", "container", event.Container, "path", event.Path)
}

func (a *Auditor) audit(ctx context.Context, event entity.BlobEvent) error {
	blob, err := a.retriever.GetByPath(ctx, event.Container, event.Path)
	if err != nil {
		return fmt.Errorf("no record for blob: %w", err)
	}

	reader, err := a.minioGetter.Get(ctx, event.Container, event.Path)
	if err != nil {
		return fmt.Errorf("can't read blob content: %w", err)
	}
	defer reader.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, reader); err != nil {
		return fmt.Errorf("can't hash blob content: %w", err)
	}

	sum := hex.EncodeToString(hash.Sum(nil))
	if sum != blob.Sha256 {
		return fmt.Errorf("checksum mismatch: stored %s, recorded %s", sum, blob.Sha256)
	}

	return a.verifier.MarkVerified(ctx, event.Container, event.Path, time.Now())
}
