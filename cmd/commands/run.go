package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"blobd"
	"blobd/config"
	"blobd/internal/application/usecase"
	"blobd/internal/infrastructure/broker"
	"blobd/internal/infrastructure/database"
	"blobd/internal/infrastructure/minio"
	"blobd/internal/presentation"
	"blobd/internal/presentation/handler"
	"blobd/internal/presentation/middleware"
	"blobd/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running blobd", "version", blobd.StringVersion())

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}

	brokerPublisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	dbWriter := database.NewBlobWriter(db)
	dbRetriever := database.NewBlobRetriever(db)
	dbRemover := database.NewBlobRemover(db)
	dbLister := database.NewBlobLister(db)
	dbMover := database.NewBlobMover(db)

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}

	minIOUploader := minio.NewUploader(minIOClient.MinioClient, &cfg.MinIOUploader)
	minIOMover := minio.NewMover(minIOClient.MinioClient, &cfg.MinIOMover)
	minIORemover := minio.NewRemover(minIOClient.MinioClient, &cfg.MinIORemover)
	minIOGetter := minio.NewGetter(minIOClient.MinioClient, &cfg.MinIOGetter)

	publicAddress := cfg.HTTPServer.PublicAddress

	uploader := usecase.NewUploader(brokerPublisher, dbRetriever, dbWriter, minIOUploader,
		minIORemover, dbRemover, publicAddress)
	mover := usecase.NewMover(brokerPublisher, dbRetriever, dbMover, minIOMover, publicAddress)
	getter := usecase.NewGetter(dbRetriever, minIOGetter)
	deleter := usecase.NewDeleter(dbRetriever, dbRemover, minIORemover)
	lister := usecase.NewLister(dbLister, publicAddress)

	uploadHandler := handler.NewUploadHandler(uploader)
	moveHandler := handler.NewMoveHandler(mover)
	getHandler := handler.NewGetHandler(getter)
	headHandler := handler.NewHeadHandler(getter)
	deleteHandler := handler.NewDeleteHandler(deleter)
	listHandler := handler.NewListHandler(lister)

	if len(cfg.HTTPServer.APIKeys) == 0 {
		logger.Warn("no API keys configured, mutating endpoints will reject all requests")
	}
	apiKeyGuard := middleware.APIKeyMiddleware(cfg.HTTPServer.APIKeys)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderContentLength, presentation.APIKeyHeader},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.HTTPServer.BodyLimit))
	e.Use(echoMiddleware.RateLimiter(
		echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.HTTPServer.RateLimit))))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.POST("/upload", uploadHandler.HandleUpload, apiKeyGuard)
	e.POST("/move", moveHandler.HandleMove, apiKeyGuard)
	e.GET("/list/:container", listHandler.HandleList)
	e.GET("/:container/*", getHandler.HandleGet)
	e.HEAD("/:container/*", headHandler.HandleHead)
	e.DELETE("/:container/*", deleteHandler.HandleDelete, apiKeyGuard)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTPServer.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	if err := db.Stop(); err != nil {
		logger.Error("failed to close database connection", "err", err)
	}
	if err := brokerClient.Close(); err != nil {
		logger.Error("failed to close broker connection", "err", err)
	}

	logger.Info("blobd stopped")
}
