package handler

import (
	"errors"
	"net/http"

	"shop-api/internal/middleware"
	"shop-api/internal/service"
	"shop-api/internal/token"
	"shop-api/internal/util"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes registration, login and the admin-gated user
// lifecycle over HTTP.
type UserHandler struct {
	Users  *service.UserService
	Tokens *token.Service
}

func NewUserHandler(users *service.UserService, tokens *token.Service) *UserHandler {
	return &UserHandler{Users: users, Tokens: tokens}
}

type registerReq struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8,max=64"`
	Email    string `json:"email" binding:"required,email"`
}

// Register 注册新用户。成功后异步发送注册邮件，不签发 token。
func (h *UserHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if err := h.Users.Register(req.Username, req.Password, req.Email); err != nil {
		respondError(c, err, http.StatusConflict, "A user with this name or email already exists.")
		return
	}

	util.Message(c, http.StatusCreated, "User created successfully.")
}

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 校验凭证并签发 fresh access token 和 refresh token。
func (h *UserHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	access, refresh, err := h.Users.Login(req.Username, req.Password)
	if err != nil {
		// unknown user and wrong password answer identically
		if errors.Is(err, service.ErrInvalidCredentials) {
			util.Error(c, http.StatusUnauthorized, "Invalid credentials.")
			return
		}
		util.Error(c, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// Logout revokes the jti of the presented access token.
func (h *UserHandler) Logout(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		util.Error(c, http.StatusUnauthorized, "Missing or invalid token.")
		return
	}

	if err := h.Tokens.Revoke(claims); err != nil {
		util.Error(c, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	util.Message(c, http.StatusOK, "Successfully logged out.")
}

// Refresh issues a new, non-fresh access token from a refresh token.
// The refresh token itself is neither rotated nor revoked.
func (h *UserHandler) Refresh(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		util.Error(c, http.StatusUnauthorized, "Missing or invalid token.")
		return
	}

	access, err := h.Tokens.IssueAccess(claims.UserID, claims.IsAdmin, false)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": access})
}

// Get returns a user's public profile. Admin only (enforced in routing).
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.Users.Get(id)
	if err != nil {
		respondError(c, err, http.StatusConflict, "")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete removes a user. Admin only, fresh token required (routing).
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.Users.Delete(id); err != nil {
		respondError(c, err, http.StatusConflict, "")
		return
	}

	util.Message(c, http.StatusOK, "User deleted.")
}
