package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/diewo77/seedmart/internal/config"
	"github.com/diewo77/seedmart/internal/models"
	"github.com/diewo77/seedmart/internal/session"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Authenticator checks operator credentials against the users table.
type Authenticator struct {
	db *gorm.DB
}

func NewAuthenticator(db *gorm.DB) *Authenticator {
	return &Authenticator{db: db}
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareDummy spends the same bcrypt work as a real comparison so unknown
// usernames are not distinguishable by timing.
func compareDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("seedmart-dummy"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// Login returns a new session iff the user exists, holds a role and the
// password matches. Every failure is ErrInvalidCredentials.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*session.Session, error) {
	var user models.User
	err := a.db.WithContext(ctx).Preload("Role.Role").Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		compareDummy(password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Role == nil || !user.Role.RoleID.Valid() {
		return nil, ErrInvalidCredentials
	}
	return session.New(user.ID, user.Username, user.Role.RoleID, user.RoleName()), nil
}

// HashPassword hashes a password with bcrypt at cost, using the bcrypt
// default when cost is out of range.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), config.ClampBcryptCost(cost))
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
