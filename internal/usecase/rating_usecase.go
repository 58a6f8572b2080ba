package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ledjassa/marketplace-service/internal/domain"
)

type RatingUsecase interface {
	RateOrder(orderID, raterID string, score int, comment string) (*domain.Rating, error)
	ListOrderRatings(orderID string) ([]*domain.Rating, error)
}

type DefaultRatingUsecase struct {
	Store domain.Store
}

func NewDefaultRatingUsecase(store domain.Store) *DefaultRatingUsecase {
	return &DefaultRatingUsecase{Store: store}
}

func (uc *DefaultRatingUsecase) RateOrder(orderID, raterID string, score int, comment string) (*domain.Rating, error) {
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("%w: score must be between 1 and 5", domain.ErrValidation)
	}

	// Only the order's buyer may rate it.
	if _, err := uc.Store.Orders().GetOrderForBuyer(orderID, raterID); err != nil {
		return nil, err
	}

	if _, err := uc.Store.Ratings().GetRatingByOrderAndRater(orderID, raterID); err == nil {
		return nil, domain.ErrAlreadyRated
	} else if !errors.Is(err, domain.ErrRatingNotFound) {
		return nil, err
	}

	rating := &domain.Rating{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		RaterID:   raterID,
		Score:     score,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := uc.Store.Ratings().CreateRating(rating); err != nil {
		return nil, err
	}
	return rating, nil
}

func (uc *DefaultRatingUsecase) ListOrderRatings(orderID string) ([]*domain.Rating, error) {
	return uc.Store.Ratings().ListRatingsByOrderID(orderID)
}
