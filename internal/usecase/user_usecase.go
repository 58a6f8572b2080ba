package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ledjassa/marketplace-service/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Phone    string
	Address  string
	IsSeller bool
	ShopName string
}

type UserUsecase interface {
	Register(input *RegisterInput) (*domain.User, error)
	Login(email, password string) (string, *domain.User, error)
	GetProfile(userID string) (*domain.User, error)
}

type DefaultUserUsecase struct {
	Store     domain.Store
	JWTSecret []byte
	TokenTTL  time.Duration
	Logger    *zap.Logger
}

func NewDefaultUserUsecase(store domain.Store, jwtSecret string, tokenTTL time.Duration, logger *zap.Logger) *DefaultUserUsecase {
	return &DefaultUserUsecase{
		Store:     store,
		JWTSecret: []byte(jwtSecret),
		TokenTTL:  tokenTTL,
		Logger:    logger,
	}
}

func (uc *DefaultUserUsecase) Register(input *RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: username and email are required", domain.ErrValidation)
	}
	if len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrValidation)
	}

	if _, err := uc.Store.Users().GetUserByEmail(input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Address:      input.Address,
		IsSeller:     input.IsSeller,
		ShopName:     input.ShopName,
		CreatedAt:    time.Now(),
	}
	if err := uc.Store.Users().CreateUser(user); err != nil {
		return nil, err
	}

	uc.Logger.Info("user registered",
		zap.String("user_id", user.ID),
		zap.Bool("is_seller", user.IsSeller),
	)
	return user, nil
}

func (uc *DefaultUserUsecase) Login(email, password string) (string, *domain.User, error) {
	user, err := uc.Store.Users().GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       user.ID,
		"is_seller": user.IsSeller,
		"exp":       time.Now().Add(uc.TokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	})

	signed, err := token.SignedString(uc.JWTSecret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, user, nil
}

func (uc *DefaultUserUsecase) GetProfile(userID string) (*domain.User, error) {
	return uc.Store.Users().GetUserByID(userID)
}
