package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrUsernameTaken means the requested username already exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials covers both unknown users and wrong passwords,
	// so responses don't reveal which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrBadCredentialsInput means username or password was blank.
	ErrBadCredentialsInput = errors.New("username and password are required")
)

// Service manages user accounts.
type Service struct {
	db *gorm.DB
}

// NewService migrates the users table and returns the account service.
func NewService(db *gorm.DB) (*Service, error) {
	if err := db.AutoMigrate(&User{}); err != nil {
		return nil, fmt.Errorf("migrate users table: %w", err)
	}
	return &Service{db: db}, nil
}

// Register creates a new account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrBadCredentialsInput
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if count > 0 {
		return ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.db.WithContext(ctx).Create(&User{Username: username, PasswordHash: string(hash)}).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login verifies the given credentials.
func (s *Service) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrBadCredentialsInput
	}

	var user User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}
