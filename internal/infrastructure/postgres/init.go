package postgres

import (
	"log"

	"github.com/ledjassa/marketplace-service/internal/config"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.MarketplaceConfig) *gorm.DB {
	dsn := cfg.MarketplaceDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.UserModel{},
		&models.CategoryModel{},
		&models.ProductModel{},
		&models.ProductImageModel{},
		&models.OrderModel{},
		&models.OrderStatusHistoryModel{},
		&models.ConversationModel{},
		&models.MessageModel{},
		&models.RatingModel{},
	)

	return db
}
