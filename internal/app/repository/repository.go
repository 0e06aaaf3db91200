package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lexforge/internal/app/config"
	"lexforge/internal/app/ds"
)

var ErrNotFound = errors.New("record not found")

// Store хранилище черновиков, профилей и клиентов
type Store interface {
	CreateContract(ctx context.Context, c *ds.Contract) error
	GetContract(ctx context.Context, id string) (*ds.Contract, error)
	ListContracts(ctx context.Context, userID string) ([]ds.Contract, error)
	UpdateContract(ctx context.Context, c *ds.Contract) error
	DeleteContract(ctx context.Context, id string) error

	// MigrateUser передаёт договоры, клиентов и профиль анонимного пользователя
	// пользователю to. Возвращает число перенесённых записей.
	MigrateUser(ctx context.Context, from, to string) (int, error)

	GetProfile(ctx context.Context, userID string) (*ds.UserProfile, error)
	SaveProfile(ctx context.Context, p *ds.UserProfile) error

	CreateClient(ctx context.Context, c *ds.Client) error
	GetClient(ctx context.Context, id string) (*ds.Client, error)
	ListClients(ctx context.Context, userID string) ([]ds.Client, error)
	UpdateClient(ctx context.Context, c *ds.Client) error
	DeleteClient(ctx context.Context, id string) error

	Close() error
}

// New открывает хранилище по настройкам
func New(cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case config.StorageFile, "":
		return NewFileStore(cfg.DataDir)
	case config.StoragePostgres, config.StorageSQLite:
		return NewGormStore(cfg.Driver, cfg.DSN)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// validID id записей это uuid, всё остальное отклоняется
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func stampNew(createdAt, updatedAt *time.Time) {
	t := now()
	if createdAt.IsZero() {
		*createdAt = t
	}
	*updatedAt = t
}
