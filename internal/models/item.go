package models

import "time"

// Item belongs to a store and carries a many-to-many tag set through
// the item_tags join table.
type Item struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:80;not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	StoreID   uint      `gorm:"index;not null" json:"store_id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Tags []Tag `gorm:"many2many:item_tags;" json:"tags,omitempty"`
}

// ItemTag is the explicit join table between items and tags. The composite
// primary key makes the (item, tag) pair unique at the storage layer, so
// linking the same pair twice is a no-op rather than a duplicate row.
type ItemTag struct {
	ItemID uint `gorm:"primaryKey" json:"item_id"`
	TagID  uint `gorm:"primaryKey" json:"tag_id"`
}
