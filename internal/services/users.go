package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diewo77/seedmart/internal/gate"
	"github.com/diewo77/seedmart/internal/models"
	"github.com/diewo77/seedmart/internal/policy"
	"github.com/diewo77/seedmart/internal/session"
	"github.com/diewo77/seedmart/internal/validation"
	"gorm.io/gorm"
)

var validRoles = []models.RoleID{models.RoleAdmin, models.RoleManager, models.RoleCashier}

// UserInput is a new operator account.
type UserInput struct {
	Username string
	Password string
	Email    string
	Role     models.RoleID
}

// UserPatch changes an account; nil fields keep their current value.
type UserPatch struct {
	Username *string
	Password *string
	Email    *string
	Role     *models.RoleID
}

// UserService manages operator accounts and their role assignments.
type UserService struct {
	db           *gorm.DB
	gate         *policy.AuthGate
	PasswordCost int
}

func NewUserService(db *gorm.DB, ag *policy.AuthGate, passwordCost int) *UserService {
	return &UserService{db: db, gate: ag, PasswordCost: passwordCost}
}

// List returns every user with its role, ordered by id.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	if err := s.gate.Authorize(ctx, gate.ActionList, policy.ResourceUser, nil); err != nil {
		return nil, err
	}
	var users []models.User
	if err := s.db.WithContext(ctx).Preload("Role.Role").Order("id_user").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Create inserts the user and its role assignment in one transaction.
func (s *UserService) Create(ctx context.Context, in UserInput) (*models.User, error) {
	if err := s.gate.Authorize(ctx, gate.ActionCreate, policy.ResourceUser, nil); err != nil {
		return nil, err
	}

	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	v := validation.Violations{}
	validation.Required("username", in.Username, v)
	validation.Required("password", in.Password, v)
	validation.Email("email", in.Email, v)
	validation.OneOf("role", in.Role, validRoles, v)
	if err := v.Err(); err != nil {
		return nil, err
	}

	hash, err := HashPassword(in.Password, s.PasswordCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := models.User{
		Username:  in.Username,
		Password:  hash,
		Email:     in.Email,
		AddressID: models.DefaultAddressID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureUsernameFree(tx, in.Username, 0); err != nil {
			return err
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return tx.Create(&models.UserRole{UserID: user.ID, RoleID: in.Role}).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies the non-nil fields of patch. A role change replaces the
// role assignment and drops the cached permissions of the user.
func (s *UserService) Update(ctx context.Context, id uint, patch UserPatch) (*models.User, error) {
	if err := s.gate.Authorize(ctx, gate.ActionUpdate, policy.ResourceUser, nil); err != nil {
		return nil, err
	}

	v := validation.Violations{}
	if patch.Username != nil {
		validation.Required("username", *patch.Username, v)
	}
	if patch.Password != nil {
		validation.Required("password", *patch.Password, v)
	}
	if patch.Email != nil {
		validation.Email("email", strings.TrimSpace(*patch.Email), v)
	}
	if patch.Role != nil {
		validation.OneOf("role", *patch.Role, validRoles, v)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.Username != nil {
		updates["username"] = strings.TrimSpace(*patch.Username)
	}
	if patch.Email != nil {
		updates["email"] = strings.TrimSpace(*patch.Email)
	}
	if patch.Password != nil {
		hash, err := HashPassword(*patch.Password, s.PasswordCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updates["passwords"] = hash
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.User{}, "id_user = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if name, ok := updates["username"].(string); ok {
			if err := ensureUsernameFree(tx, name, id); err != nil {
				return err
			}
		}
		if len(updates) > 0 {
			if err := tx.Model(&models.User{}).Where("id_user = ?", id).Updates(updates).Error; err != nil {
				return fmt.Errorf("update user: %w", err)
			}
		}
		if patch.Role != nil {
			if err := tx.Where("id_user = ?", id).Delete(&models.UserRole{}).Error; err != nil {
				return fmt.Errorf("clear role: %w", err)
			}
			if err := tx.Create(&models.UserRole{UserID: id, RoleID: *patch.Role}).Error; err != nil {
				return fmt.Errorf("assign role: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if patch.Role != nil {
		s.gate.InvalidateUser(id)
	}

	var user models.User
	if err := s.db.WithContext(ctx).Preload("Role.Role").First(&user, "id_user = ?", id).Error; err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	return &user, nil
}

// Delete removes the role assignment, then the user. Operators cannot delete
// themselves, and users referenced by products or sales are kept.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	if err := s.gate.Authorize(ctx, gate.ActionDelete, policy.ResourceUser, nil); err != nil {
		return err
	}
	if uid, _ := session.UserIDFromContext(ctx); uid == id {
		return ErrSelfDelete
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.User{}, "id_user = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var products, sales int64
		if err := tx.Model(&models.Product{}).Where("id_user = ?", id).Count(&products).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Transaction{}).Where("id_user = ?", id).Count(&sales).Error; err != nil {
			return err
		}
		if products > 0 || sales > 0 {
			return ErrUserInUse
		}

		if err := tx.Where("id_user = ?", id).Delete(&models.UserRole{}).Error; err != nil {
			return fmt.Errorf("delete role: %w", err)
		}
		return tx.Where("id_user = ?", id).Delete(&models.User{}).Error
	})
	if err != nil {
		return err
	}
	s.gate.InvalidateUser(id)
	return nil
}

func ensureUsernameFree(tx *gorm.DB, username string, exceptID uint) error {
	var count int64
	if err := tx.Model(&models.User{}).Where("username = ? AND id_user <> ?", username, exceptID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUsernameTaken
	}
	return nil
}
