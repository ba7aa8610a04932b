package models

import "time"

// RevokedToken records the jti of a token revoked at logout. The table is
// the shared blocklist checked on every authenticated request; rows whose
// ExpiresAt has passed can be purged since the token would be rejected by
// its own expiry anyway.
type RevokedToken struct {
	ID        uint      `gorm:"primaryKey"`
	JTI       string    `gorm:"size:64;uniqueIndex;not null"`
	UserID    uint      `gorm:"index"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
}
