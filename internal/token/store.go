package token

import (
	"fmt"
	"time"

	"shop-api/internal/models"
	"shop-api/internal/util"

	"gorm.io/gorm"
)

// RevocationStore tracks revoked token identifiers (jti). It is backed by
// shared persistent storage so revocation is visible to every worker
// process, not just the one that handled the logout.
type RevocationStore interface {
	Revoke(jti string, userID uint, expiresAt time.Time) error
	IsRevoked(jti string) (bool, error)
	PurgeExpired(now time.Time) (int64, error)
}

// GormRevocationStore persists the blocklist in the revoked_tokens table.
type GormRevocationStore struct {
	DB *gorm.DB
}

func NewGormRevocationStore(db *gorm.DB) *GormRevocationStore {
	return &GormRevocationStore{DB: db}
}

func (s *GormRevocationStore) Revoke(jti string, userID uint, expiresAt time.Time) error {
	rec := models.RevokedToken{
		JTI:       jti,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		// revoking an already revoked token is not an error
		if util.IsUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *GormRevocationStore) IsRevoked(jti string) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.RevokedToken{}).
		Where("jti = ?", jti).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("query blocklist: %w", err)
	}
	return count > 0, nil
}

// PurgeExpired drops blocklist rows whose token has expired on its own,
// keeping the table bounded by the token TTL.
func (s *GormRevocationStore) PurgeExpired(now time.Time) (int64, error) {
	res := s.DB.Where("expires_at < ?", now).Delete(&models.RevokedToken{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge blocklist: %w", res.Error)
	}
	return res.RowsAffected, nil
}
