package repository

import (
	"context"
	"fmt"
	"strings"

	"equiprent/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func (s *Store) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{Username: username, PasswordHash: string(hash)}
	err = s.write(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: username %q is taken", ErrConflict, username)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (out *domain.User, err error) {
	err = s.read(ctx, func(db *gorm.DB) error {
		out, err = getByID[domain.User](db, id)
		return err
	})
	return out, err
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := s.read(ctx, func(db *gorm.DB) error {
		return db.Where("username = ?", username).First(&u).Error
	})
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// CheckPassword compares a plain password against the stored hash.
func CheckPassword(u *domain.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
