package mappers

import (
	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres/models"
)

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	product := &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Condition:   domain.ProductCondition(model.Condition),
		Location:    model.Location,
		Stock:       model.Stock,
		Sold:        model.Sold,
		SellerID:    model.SellerID,
		CategoryID:  model.CategoryID,
		CreatedAt:   model.CreatedAt,
	}
	if model.Seller.ID != "" {
		product.Seller = ToDomainUser(&model.Seller)
	}
	if model.Category.ID != "" {
		product.Category = &domain.Category{
			ID:          model.Category.ID,
			Name:        model.Category.Name,
			Description: model.Category.Description,
		}
	}
	for _, img := range model.Images {
		product.Images = append(product.Images, domain.ProductImage{
			ID:        img.ID,
			ProductID: img.ProductID,
			URL:       img.URL,
		})
	}
	return product
}

func ToGORMProduct(product *domain.Product) *models.ProductModel {
	model := &models.ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Condition:   string(product.Condition),
		Location:    product.Location,
		Stock:       product.Stock,
		Sold:        product.Sold,
		SellerID:    product.SellerID,
		CategoryID:  product.CategoryID,
		CreatedAt:   product.CreatedAt,
	}
	for _, img := range product.Images {
		model.Images = append(model.Images, models.ProductImageModel{
			ID:        img.ID,
			ProductID: img.ProductID,
			URL:       img.URL,
		})
	}
	return model
}

func ToDomainCategory(model *models.CategoryModel) *domain.Category {
	return &domain.Category{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
	}
}
