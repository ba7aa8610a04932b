package models

import "time"

// Store owns items and tags.
type Store struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:80;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Items []Item `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Tags  []Tag  `gorm:"constraint:OnDelete:CASCADE" json:"tags,omitempty"`
}
