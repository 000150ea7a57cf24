package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreModel is the GORM-specific struct for the 'stores' table.
type StoreModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     string    `gorm:"type:varchar(128);not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Address     string    `gorm:"type:varchar(255);not null;default:''"`
	Phone       string    `gorm:"type:varchar(32);not null;default:''"`
	ImageURL    string    `gorm:"type:varchar(512);not null;default:''"`
	Latitude    *float64  `gorm:"type:double precision"`
	Longitude   *float64  `gorm:"type:double precision"`
	IsOpen      bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}
