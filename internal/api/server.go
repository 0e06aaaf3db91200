package api

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"lexforge/internal/app/config"
	"lexforge/internal/app/contract"
	"lexforge/internal/app/handler"
	"lexforge/internal/app/middleware"
	"lexforge/internal/app/pdf"
	"lexforge/internal/app/redis"
	"lexforge/internal/app/repository"
	"lexforge/internal/app/storage"
	"lexforge/internal/pkg"
)

const startupTimeout = 15 * time.Second

func StartServer() error {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	cfg.SetupLogger()

	store, err := repository.New(cfg.Storage)
	if err != nil {
		return fmt.Errorf("ошибка инициализации репозитория: %w", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	// Redis и MinIO необязательны: без них не работают logout и архив PDF
	var blacklist middleware.Blacklist
	if cfg.Redis.Host != "" {
		redisClient, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			logrus.WithError(err).Warn("redis unavailable, token blacklist disabled")
		} else {
			defer redisClient.Close()
			blacklist = redisClient
		}
	}

	var archive handler.Archive
	if cfg.MinIO.Endpoint != "" {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO)
		if err != nil {
			logrus.WithError(err).Warn("minio unavailable, pdf archive disabled")
		} else {
			archive = minioClient
		}
	}

	engine, err := pdf.NewHTMLEngine()
	if err != nil {
		return err
	}
	generator := pdf.NewGenerator(engine, pdf.NewChromedpRenderer(pdf.ChromedpConfig{
		Timeout:   cfg.PDF.Timeout,
		RemoteURL: cfg.PDF.RemoteURL,
		NoSandbox: cfg.PDF.NoSandbox,
	}), pdf.WithFormWriter(pdf.NewPdfcpuForms()))
	defer generator.Close()

	builder := contract.NewBuilder(contract.WithDefaultCessionnaire(cfg.Cessionnaire))
	auth := middleware.NewAuthMiddleware(blacklist, cfg)
	h := handler.NewHandler(store, builder, generator, archive, auth, cfg)

	application := pkg.NewApp(cfg, pkg.NewRouter(cfg), h)
	return application.RunApp()
}
