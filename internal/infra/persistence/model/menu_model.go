package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuCategoryModel is the GORM-specific struct for the 'menu_categories' table.
type MenuCategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_menu_categories_store_name,where:deleted_at IS NULL"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_menu_categories_store_name,where:deleted_at IS NULL"`
	SortOrder int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MenuCategoryModel) TableName() string {
	return "menu_categories"
}

// MenuItemModel is the GORM-specific struct for the 'menu_items' table.
// Price is stored in the smallest currency unit.
type MenuItemModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"type:varchar(100);not null"`
	Description string     `gorm:"type:text;not null;default:''"`
	Price       int64      `gorm:"not null;check:chk_menu_items_price,price >= 0"`
	ImageURL    string     `gorm:"type:varchar(512);not null;default:''"`
	IsAvailable bool       `gorm:"not null"`
	SortOrder   int        `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MenuItemModel) TableName() string {
	return "menu_items"
}

// All lists every model for schema migration.
func All() []any {
	return []any{&StoreModel{}, &MenuCategoryModel{}, &MenuItemModel{}}
}
