package repository

import (
	"errors"
	"fmt"

	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres/mappers"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRatingRepository struct {
	DB *gorm.DB
}

func NewDefaultRatingRepository(db *gorm.DB) *DefaultRatingRepository {
	return &DefaultRatingRepository{DB: db}
}

func (r *DefaultRatingRepository) CreateRating(rating *domain.Rating) error {
	if err := r.DB.Create(mappers.ToGORMRating(rating)).Error; err != nil {
		return fmt.Errorf("create rating: %w", err)
	}
	return nil
}

func (r *DefaultRatingRepository) GetRatingByOrderAndRater(orderID, raterID string) (*domain.Rating, error) {
	var model models.RatingModel
	err := r.DB.
		Where("order_id = ? AND rater_id = ?", orderID, raterID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRatingNotFound
		}
		return nil, err
	}
	return mappers.ToDomainRating(&model), nil
}

func (r *DefaultRatingRepository) ListRatingsByOrderID(orderID string) ([]*domain.Rating, error) {
	var ratingModels []models.RatingModel
	err := r.DB.
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&ratingModels).Error
	if err != nil {
		return nil, err
	}

	ratings := make([]*domain.Rating, len(ratingModels))
	for i := range ratingModels {
		ratings[i] = mappers.ToDomainRating(&ratingModels[i])
	}
	return ratings, nil
}
