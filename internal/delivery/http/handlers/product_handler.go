package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledjassa/marketplace-service/internal/delivery/http/middleware"
	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/ledjassa/marketplace-service/internal/usecase"
)

type ProductHandler struct {
	uc usecase.ProductUsecase
}

func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type productRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Condition   string   `json:"condition" binding:"required"`
	Location    string   `json:"location"`
	Stock       int      `json:"stock"`
	CategoryID  string   `json:"category_id"`
	ImageURLs   []string `json:"image_urls"`
}

type sellerSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	ShopName string `json:"shop_name,omitempty"`
}

type productResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	Condition      string         `json:"condition"`
	ConditionLabel string         `json:"condition_label"`
	Location       string         `json:"location,omitempty"`
	Stock          int            `json:"stock"`
	CategoryID     string         `json:"category_id,omitempty"`
	ImageURLs      []string       `json:"image_urls,omitempty"`
	Seller         *sellerSummary `json:"seller,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

func toProductResponse(p *domain.Product) productResponse {
	resp := productResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		Condition:      string(p.Condition),
		ConditionLabel: p.Condition.Label(),
		Location:       p.Location,
		Stock:          p.Stock,
		CategoryID:     p.CategoryID,
		CreatedAt:      p.CreatedAt,
	}
	for _, img := range p.Images {
		resp.ImageURLs = append(resp.ImageURLs, img.URL)
	}
	if p.Seller != nil {
		resp.Seller = &sellerSummary{
			ID:       p.Seller.ID,
			Username: p.Seller.Username,
			ShopName: p.Seller.ShopName,
		}
	}
	return resp
}

func toProductResponses(products []*domain.Product) []productResponse {
	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	return out
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.uc.CreateProduct(&usecase.CreateProductInput{
		SellerID:    middleware.UserID(c),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Condition:   domain.ProductCondition(req.Condition),
		Location:    req.Location,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(product))
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.uc.ListProducts()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

func (h *ProductHandler) ListMine(c *gin.Context) {
	products, err := h.uc.ListSellerProducts(middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.uc.GetProductByID(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.uc.UpdateProduct(&usecase.UpdateProductInput{
		ProductID:   c.Param("id"),
		SellerID:    middleware.UserID(c),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Condition:   domain.ProductCondition(req.Condition),
		Location:    req.Location,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.uc.DeleteProduct(c.Param("id"), middleware.UserID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) Search(c *gin.Context) {
	query := c.Query("q")

	var categoryIDs []string
	if raw := c.Query("category_id"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				categoryIDs = append(categoryIDs, id)
			}
		}
	}

	products, err := h.uc.SearchProducts(query, categoryIDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

func (h *ProductHandler) Conditions(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Conditions())
}

func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.uc.ListCategories()
	if err != nil {
		writeError(c, err)
		return
	}

	type categoryResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	}
	out := make([]categoryResponse, len(categories))
	for i, cat := range categories {
		out[i] = categoryResponse{ID: cat.ID, Name: cat.Name, Description: cat.Description}
	}
	c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) Statistics(c *gin.Context) {
	stats, err := h.uc.GetSellerStatistics(middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
