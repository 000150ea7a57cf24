package entity

import (
	"time"

	"github.com/google/uuid"
)

// MenuCategory groups menu items of a store.
type MenuCategory struct {
	ID        uuid.UUID `json:"id"`
	StoreID   uuid.UUID `json:"store_id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MenuItem is an orderable item. Price is in the smallest currency unit.
type MenuItem struct {
	ID          uuid.UUID  `json:"id"`
	StoreID     uuid.UUID  `json:"store_id"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Price       int64      `json:"price"`
	ImageURL    string     `json:"image_url,omitempty"`
	IsAvailable bool       `json:"is_available"`
	SortOrder   int        `json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MenuSection is one category and its items, as shown to customers.
type MenuSection struct {
	Category *MenuCategory `json:"category,omitempty"` // nil for uncategorized items
	Items    []*MenuItem   `json:"items"`
}

// Menu is a store's full menu.
type Menu struct {
	Store    *Store         `json:"store"`
	Sections []*MenuSection `json:"sections"`
}
