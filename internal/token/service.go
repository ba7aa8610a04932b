package token

import (
	"errors"
	"time"

	"shop-api/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var (
	ErrInvalid = errors.New("token invalid")
	ErrRevoked = errors.New("token revoked")
)

// Claims 自定义 JWT 负载。jti（RegisteredClaims.ID）用于注销后的吊销追踪。
type Claims struct {
	UserID    uint   `json:"user_id"`
	IsAdmin   bool   `json:"is_admin"`
	Fresh     bool   `json:"fresh"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// Service issues and validates access/refresh tokens. Every validation
// checks the revocation store, so a token revoked at logout is rejected
// for the rest of its lifetime.
type Service struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	revoked    RevocationStore
}

func NewService(cfg config.JWTConfig, revoked RevocationStore) *Service {
	accessMins := cfg.AccessExpireMins
	if accessMins <= 0 {
		accessMins = 15
	}
	refreshHours := cfg.RefreshExpireHours
	if refreshHours <= 0 {
		refreshHours = 24 * 7
	}
	return &Service{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		accessTTL:  time.Duration(accessMins) * time.Minute,
		refreshTTL: time.Duration(refreshHours) * time.Hour,
		revoked:    revoked,
	}
}

// IssueAccess generates an access token. fresh marks tokens issued
// directly from a password login; refresh exchanges issue non-fresh ones.
func (s *Service) IssueAccess(userID uint, isAdmin, fresh bool) (string, error) {
	return s.issue(userID, isAdmin, fresh, TypeAccess, s.accessTTL)
}

// IssueRefresh generates a refresh token bound to the same identity.
func (s *Service) IssueRefresh(userID uint, isAdmin bool) (string, error) {
	return s.issue(userID, isAdmin, false, TypeRefresh, s.refreshTTL)
}

func (s *Service) issue(userID uint, isAdmin, fresh bool, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:    userID,
		IsAdmin:   isAdmin,
		Fresh:     fresh,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseAccess 解析并验证 access token，包括吊销检查。
func (s *Service) ParseAccess(tokenStr string) (*Claims, error) {
	return s.parse(tokenStr, TypeAccess)
}

// ParseRefresh 解析并验证 refresh token，包括吊销检查。
func (s *Service) ParseRefresh(tokenStr string) (*Claims, error) {
	return s.parse(tokenStr, TypeRefresh)
}

func (s *Service) parse(tokenStr, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, ErrInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalid
	}
	if claims.TokenType != wantType {
		return nil, ErrInvalid
	}

	revoked, err := s.revoked.IsRevoked(claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrRevoked
	}
	return claims, nil
}

// Revoke adds the token's jti to the blocklist. The blocklist entry
// carries the token expiry so expired entries can be purged later.
func (s *Service) Revoke(claims *Claims) error {
	expires := time.Now().Add(s.accessTTL)
	if claims.ExpiresAt != nil {
		expires = claims.ExpiresAt.Time
	}
	return s.revoked.Revoke(claims.ID, claims.UserID, expires)
}
