package models

import "time"

// Tag is scoped to a store; the (store_id, name) pair is unique.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:80;not null;uniqueIndex:idx_tags_store_name" json:"name"`
	StoreID   uint      `gorm:"not null;uniqueIndex:idx_tags_store_name" json:"store_id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Items []Item `gorm:"many2many:item_tags;" json:"items,omitempty"`
}
