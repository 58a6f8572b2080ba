package mappers

import (
	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:           model.ID,
		Username:     model.Username,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Phone:        model.Phone,
		Address:      model.Address,
		IsSeller:     model.IsSeller,
		ShopName:     model.ShopName,
		CreatedAt:    model.CreatedAt,
	}
}

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Phone:        user.Phone,
		Address:      user.Address,
		IsSeller:     user.IsSeller,
		ShopName:     user.ShopName,
		CreatedAt:    user.CreatedAt,
	}
}
