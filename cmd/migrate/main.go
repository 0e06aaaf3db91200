package main

import (
	"github.com/sirupsen/logrus"

	"lexforge/internal/app/config"
	"lexforge/internal/app/repository"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	cfg.SetupLogger()

	if cfg.Storage.Driver == config.StorageFile {
		logrus.Info("File storage needs no migration")
		return
	}

	// NewGormStore применяет AutoMigrate ко всем таблицам
	store, err := repository.NewGormStore(cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
	defer store.Close()

	logrus.Info("Database migration completed successfully")
}
