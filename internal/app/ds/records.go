package ds

import "time"

// Таблицы для SQL-хранилища. Полезная нагрузка хранится JSON-строкой.

type ContractRecord struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	UserID    string    `gorm:"type:varchar(128);not null;index"`
	Title     string    `gorm:"type:varchar(255)"`
	Payload   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null;index"`
}

func (ContractRecord) TableName() string { return "contracts" }

type ProfileRecord struct {
	UserID    string    `gorm:"type:varchar(128);primaryKey"`
	Payload   string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (ProfileRecord) TableName() string { return "user_profiles" }

type ClientRecord struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	UserID    string    `gorm:"type:varchar(128);not null;index"`
	Name      string    `gorm:"type:varchar(255)"`
	Payload   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (ClientRecord) TableName() string { return "clients" }
