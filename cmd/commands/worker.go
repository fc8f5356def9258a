package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"blobd"
	"blobd/config"
	"blobd/internal/application/usecase"
	"blobd/internal/infrastructure/broker"
	"blobd/internal/infrastructure/database"
	"blobd/internal/infrastructure/minio"
	"blobd/pkg/logger"
)

// HandleWorker starts the integrity auditor, which consumes blob events and
// re-checks stored content against the recorded checksums.
func HandleWorker(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running blobd worker", "version", blobd.StringVersion())

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}

	receiver := broker.NewReceiver(brokerClient)
	retriever := database.NewBlobRetriever(db)
	verifier := database.NewBlobVerifier(db)
	minIOGetter := minio.NewGetter(minIOClient.MinioClient, &cfg.MinIOGetter)

	auditor := usecase.NewAuditor(receiver, retriever, verifier, minIOGetter)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumerName := fmt.Sprintf("auditor-%s", uuid.NewString()[:8])
	if err := auditor.Run(ctx, consumerName); err != nil {
		ExitOnError(err)
	}

	if err := db.Stop(); err != nil {
		logger.Error("failed to close database connection", "err", err)
	}
	if err := brokerClient.Close(); err != nil {
		logger.Error("failed to close broker connection", "err", err)
	}

	logger.Info("blobd worker stopped")
}
