package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lexforge/internal/app/config"
	"lexforge/internal/app/ds"
)

// GormStore хранит записи в SQL, данные договора лежат JSON-строкой в payload
type GormStore struct {
	db *gorm.DB
}

type contractPayload struct {
	Data     ds.ContractRequest `json:"data"`
	Elements map[string]string  `json:"elements,omitempty"`
	Comments []ds.Comment       `json:"comments,omitempty"`
}

type clientPayload struct {
	Type string   `json:"type"`
	Info ds.Party `json:"info"`
}

func NewGormStore(driver, dsn string) (*GormStore, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.StoragePostgres:
		dialector = postgres.Open(dsn)
	case config.StorageSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, err
	}
	if err = Migrate(db); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

// Migrate создаёт и обновляет таблицы
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&ds.ContractRecord{},
		&ds.ProfileRecord{},
		&ds.ClientRecord{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func contractRecord(c *ds.Contract) (*ds.ContractRecord, error) {
	payload, err := json.Marshal(contractPayload{Data: c.Data, Elements: c.Elements, Comments: c.Comments})
	if err != nil {
		return nil, fmt.Errorf("encode contract: %w", err)
	}
	return &ds.ContractRecord{
		ID:        c.ID,
		UserID:    c.Owner(),
		Title:     c.Title,
		Payload:   string(payload),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}

func contractFromRecord(r *ds.ContractRecord) (*ds.Contract, error) {
	var p contractPayload
	if err := json.Unmarshal([]byte(r.Payload), &p); err != nil {
		return nil, fmt.Errorf("decode contract %s: %w", r.ID, err)
	}
	return &ds.Contract{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Data:      p.Data,
		Elements:  p.Elements,
		Comments:  p.Comments,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

// Договоры

func (s *GormStore) CreateContract(ctx context.Context, c *ds.Contract) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if !validID(c.ID) {
		return fmt.Errorf("invalid contract id %q", c.ID)
	}
	c.UserID = c.Owner()
	stampNew(&c.CreatedAt, &c.UpdatedAt)
	rec, err := contractRecord(c)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *GormStore) GetContract(ctx context.Context, id string) (*ds.Contract, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	var rec ds.ContractRecord
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, notFound(err)
	}
	return contractFromRecord(&rec)
}

func (s *GormStore) ListContracts(ctx context.Context, userID string) ([]ds.Contract, error) {
	var recs []ds.ContractRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").Order("id").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]ds.Contract, 0, len(recs))
	for i := range recs {
		c, err := contractFromRecord(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

func (s *GormStore) UpdateContract(ctx context.Context, c *ds.Contract) error {
	if !validID(c.ID) {
		return ErrNotFound
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old ds.ContractRecord
		if err := tx.Where("id = ?", c.ID).First(&old).Error; err != nil {
			return notFound(err)
		}
		c.CreatedAt = old.CreatedAt
		c.UserID = c.Owner()
		c.UpdatedAt = now()
		rec, err := contractRecord(c)
		if err != nil {
			return err
		}
		return tx.Save(rec).Error
	})
}

func (s *GormStore) DeleteContract(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&ds.ContractRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) MigrateUser(ctx context.Context, from, to string) (int, error) {
	if from == "" || to == "" || from == to {
		return 0, nil
	}
	migrated := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t := now()
		res := tx.Model(&ds.ContractRecord{}).Where("user_id = ?", from).
			Updates(map[string]any{"user_id": to, "updated_at": t})
		if res.Error != nil {
			return res.Error
		}
		migrated += int(res.RowsAffected)

		res = tx.Model(&ds.ClientRecord{}).Where("user_id = ?", from).
			Updates(map[string]any{"user_id": to, "updated_at": t})
		if res.Error != nil {
			return res.Error
		}
		migrated += int(res.RowsAffected)

		var profile ds.ProfileRecord
		err := tx.Where("user_id = ?", from).First(&profile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		var count int64
		if err = tx.Model(&ds.ProfileRecord{}).Where("user_id = ?", to).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			var p ds.UserProfile
			if err = json.Unmarshal([]byte(profile.Payload), &p); err != nil {
				return fmt.Errorf("decode profile: %w", err)
			}
			p.UserID = to
			p.UpdatedAt = t
			if err = saveProfile(tx, &p); err != nil {
				return err
			}
		}
		return tx.Where("user_id = ?", from).Delete(&ds.ProfileRecord{}).Error
	})
	if err != nil {
		return 0, err
	}
	return migrated, nil
}

// Профили

func (s *GormStore) GetProfile(ctx context.Context, userID string) (*ds.UserProfile, error) {
	var rec ds.ProfileRecord
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&rec).Error; err != nil {
		return nil, notFound(err)
	}
	var p ds.UserProfile
	if err := json.Unmarshal([]byte(rec.Payload), &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	p.UserID = rec.UserID
	p.UpdatedAt = rec.UpdatedAt
	return &p, nil
}

func (s *GormStore) SaveProfile(ctx context.Context, p *ds.UserProfile) error {
	p.UpdatedAt = now()
	return saveProfile(s.db.WithContext(ctx), p)
}

func saveProfile(db *gorm.DB, p *ds.UserProfile) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return db.Save(&ds.ProfileRecord{UserID: p.UserID, Payload: string(payload), UpdatedAt: p.UpdatedAt}).Error
}

// Клиенты

func clientRecord(c *ds.Client) (*ds.ClientRecord, error) {
	payload, err := json.Marshal(clientPayload{Type: c.Type, Info: c.Info})
	if err != nil {
		return nil, fmt.Errorf("encode client: %w", err)
	}
	return &ds.ClientRecord{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Payload:   string(payload),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}

func clientFromRecord(r *ds.ClientRecord) (*ds.Client, error) {
	var p clientPayload
	if err := json.Unmarshal([]byte(r.Payload), &p); err != nil {
		return nil, fmt.Errorf("decode client %s: %w", r.ID, err)
	}
	return &ds.Client{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Type:      p.Type,
		Info:      p.Info,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func (s *GormStore) CreateClient(ctx context.Context, c *ds.Client) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if !validID(c.ID) {
		return fmt.Errorf("invalid client id %q", c.ID)
	}
	stampNew(&c.CreatedAt, &c.UpdatedAt)
	rec, err := clientRecord(c)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(rec).Error
}

func (s *GormStore) GetClient(ctx context.Context, id string) (*ds.Client, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	var rec ds.ClientRecord
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, notFound(err)
	}
	return clientFromRecord(&rec)
}

func (s *GormStore) ListClients(ctx context.Context, userID string) ([]ds.Client, error) {
	var recs []ds.ClientRecord
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("LOWER(name)").Find(&recs).Error
	if err != nil {
		return nil, err
	}
	out := make([]ds.Client, 0, len(recs))
	for i := range recs {
		c, err := clientFromRecord(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

func (s *GormStore) UpdateClient(ctx context.Context, c *ds.Client) error {
	if !validID(c.ID) {
		return ErrNotFound
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old ds.ClientRecord
		if err := tx.Where("id = ?", c.ID).First(&old).Error; err != nil {
			return notFound(err)
		}
		c.CreatedAt = old.CreatedAt
		c.UpdatedAt = now()
		rec, err := clientRecord(c)
		if err != nil {
			return err
		}
		return tx.Save(rec).Error
	})
}

func (s *GormStore) DeleteClient(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&ds.ClientRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Store = (*GormStore)(nil)
