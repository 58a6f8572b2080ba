package repository

import (
	"errors"
	"fmt"

	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUser(user *domain.User) error {
	if err := r.DB.Create(mappers.ToGORMUser(user)).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *DefaultUserRepository) GetUserByID(userID string) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.First(&userModel, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&userModel), nil
}

func (r *DefaultUserRepository) GetUserByEmail(email string) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.First(&userModel, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mappers.ToDomainUser(&userModel), nil
}
