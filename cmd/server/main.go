package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/swapspot/swapspot/internal/adapter/httpapi"
	"github.com/swapspot/swapspot/internal/adapter/messaging/nats"
	"github.com/swapspot/swapspot/internal/adapter/repository/cache"
	"github.com/swapspot/swapspot/internal/adapter/repository/mongodb"
	"github.com/swapspot/swapspot/internal/adapter/storage/s3"
	"github.com/swapspot/swapspot/internal/config"
	"github.com/swapspot/swapspot/internal/mailer"
	"github.com/swapspot/swapspot/internal/marketplace/usecase"
	"github.com/swapspot/swapspot/internal/platform/logger"
	"github.com/swapspot/swapspot/internal/platform/tracer"
)

func main() {
	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		zlog.Fatal("Failed to load config", zap.Error(err))
	}

	tp := tracer.InitTracer()
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			zlog.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}()

	mongoCtx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()
	mongoClient, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		zlog.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	db := mongoClient.Database(cfg.Mongo.Database)
	zlog.Info("Connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	redisClient, err := cache.NewRedisClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, zlog)
	if err != nil {
		zlog.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()

	publisher, err := nats.NewPublisher(cfg.NATS.URL)
	if err != nil {
		zlog.Fatal("Failed to connect to NATS", zap.String("url", cfg.NATS.URL), zap.Error(err))
	}
	defer publisher.Close()

	photoStorage, err := s3.NewS3Storage(cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket, cfg.MinIO.UseSSL, zlog)
	if err != nil {
		zlog.Fatal("Failed to initialize photo storage", zap.Error(err))
	}

	var mailSender mailer.Sender
	if cfg.SMTP.NotifyTo != "" {
		mailSender = mailer.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.NotifyTo)
	}

	listingRepo := mongodb.NewListingRepository(db, zlog)
	proposalRepo := mongodb.NewProposalRepository(db, zlog)
	likeRepo := mongodb.NewLikeRepository(db, zlog)
	sessionRepo := mongodb.NewSessionRepository(db, zlog)
	listingCache := cache.NewRedisCache(redisClient, zlog)

	listingUC := usecase.NewListingUsecase(listingRepo, listingCache, cfg.Redis.TTL, publisher, zlog)
	proposalUC := usecase.NewProposalUsecase(proposalRepo, listingRepo, publisher, mailSender, zlog)
	likeUC := usecase.NewLikeUsecase(likeRepo, listingRepo, sessionRepo, publisher, zlog)
	sessionUC := usecase.NewSessionUsecase(sessionRepo, zlog)
	photoUC := usecase.NewPhotoUsecase(listingUC, photoStorage, cfg.Photos.MaxWidth, zlog)

	router := httpapi.NewRouter(httpapi.Handlers{
		Sessions:  httpapi.NewSessionHandler(sessionUC, zlog),
		Likes:     httpapi.NewLikeHandler(likeUC, zlog),
		Listings:  httpapi.NewListingHandler(listingUC, photoUC, zlog),
		Proposals: httpapi.NewProposalHandler(proposalUC, zlog),
	}, zlog)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		zlog.Info("Starting HTTP server", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Graceful shutdown failed", zap.Error(err))
	}
}
