package service

import (
	"errors"
	"fmt"

	"shop-api/internal/models"
	"shop-api/internal/token"
	"shop-api/internal/util"

	"gorm.io/gorm"
)

// RegistrationNotifier is notified after a user row has been committed.
// Delivery is best-effort; a dropped notification never rolls back the
// registration.
type RegistrationNotifier interface {
	NotifyRegistered(email, username string)
}

// UserService handles registration, login and the admin-gated lifecycle.
type UserService struct {
	DB       *gorm.DB
	Tokens   *token.Service
	Notifier RegistrationNotifier
}

func NewUserService(db *gorm.DB, tokens *token.Service, notifier RegistrationNotifier) *UserService {
	return &UserService{DB: db, Tokens: tokens, Notifier: notifier}
}

// Register creates a new user. Duplicate username or email surfaces as
// ErrConflict from the unique constraints; there is deliberately no
// pre-check, concurrent submissions of the same name race to the insert
// and exactly one wins. The raw password is hashed before it touches
// the database and is never logged.
func (s *UserService) Register(username, password, email string) error {
	hash, err := util.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if util.IsUniqueViolation(err) {
			return fmt.Errorf("username or email taken: %w", ErrConflict)
		}
		return fmt.Errorf("create user: %w", err)
	}

	if s.Notifier != nil {
		s.Notifier.NotifyRegistered(user.Email, user.Username)
	}
	return nil
}

// Login verifies credentials and issues a fresh access token plus a
// refresh token. Unknown username and wrong password return the same
// error so callers cannot enumerate accounts.
func (s *UserService) Login(username, password string) (access, refresh string, err error) {
	var user models.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("query user: %w", err)
	}

	if !util.CheckPassword(password, user.PasswordHash) {
		return "", "", ErrInvalidCredentials
	}

	access, err = s.Tokens.IssueAccess(user.ID, user.IsAdmin, true)
	if err != nil {
		return "", "", fmt.Errorf("issue access token: %w", err)
	}
	refresh, err = s.Tokens.IssueRefresh(user.ID, user.IsAdmin)
	if err != nil {
		return "", "", fmt.Errorf("issue refresh token: %w", err)
	}
	return access, refresh, nil
}

// Get returns a user by id.
func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &user, nil
}

// Delete removes the user row. Stores, items and tags carry no user
// foreign key in this schema, so nothing can dangle.
func (s *UserService) Delete(id uint) error {
	res := s.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return nil
}
