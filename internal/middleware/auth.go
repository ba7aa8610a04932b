package middleware

import (
	"errors"
	"net/http"
	"strings"

	"shop-api/internal/token"
	"shop-api/internal/util"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// Auth 校验 access token（签名、过期、类型、吊销），并把 claims 放入 context。
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, "Missing or invalid token.")
			c.Abort()
			return
		}

		claims, err := tokens.ParseAccess(tokenStr)
		if err != nil {
			if errors.Is(err, token.ErrRevoked) {
				util.Error(c, http.StatusUnauthorized, "Token has been revoked.")
			} else {
				util.Error(c, http.StatusUnauthorized, "Missing or invalid token.")
			}
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RefreshAuth 校验 refresh token，用于 /refresh 接口。
func RefreshAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			util.Error(c, http.StatusUnauthorized, "Missing or invalid token.")
			c.Abort()
			return
		}

		claims, err := tokens.ParseRefresh(tokenStr)
		if err != nil {
			util.Error(c, http.StatusUnauthorized, "Missing or invalid token.")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireFresh rejects tokens obtained through a refresh exchange.
// Must run after Auth.
func RequireFresh() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil || !claims.Fresh {
			util.Error(c, http.StatusUnauthorized, "Fresh token required.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects tokens without the admin claim. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil || !claims.IsAdmin {
			util.Error(c, http.StatusUnauthorized, "Admin privilege required.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Claims returns the token claims stored by Auth/RefreshAuth, or nil.
func Claims(c *gin.Context) *token.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}
