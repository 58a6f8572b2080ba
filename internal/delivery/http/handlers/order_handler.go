package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledjassa/marketplace-service/internal/delivery/http/middleware"
	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/ledjassa/marketplace-service/internal/usecase"
	orderdto "github.com/ledjassa/marketplace-service/internal/usecase/dto/order"
)

type OrderHandler struct {
	uc usecase.OrderUsecase
}

func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type createOrderItemRequest struct {
	ProductID       string  `json:"product_id" binding:"required"`
	Quantity        int     `json:"quantity" binding:"required,gte=1"`
	TotalAmount     float64 `json:"total_amount" binding:"required,gt=0"`
	DeliveryAddress string  `json:"delivery_address"`
}

type createOrdersRequest struct {
	PaymentMethod string                   `json:"payment_method"`
	Items         []createOrderItemRequest `json:"items" binding:"required,min=1"`
}

type transitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create places a whole cart in one shot. The batch is atomic: one failing
// item rejects everything.
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := &orderdto.CreateOrdersInput{
		BuyerID:       middleware.UserID(c),
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, orderdto.CreateOrderItem{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			TotalAmount:     item.TotalAmount,
			DeliveryAddress: item.DeliveryAddress,
		})
	}

	orders, err := h.uc.CreateOrders(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"orders": orders})
}

func (h *OrderHandler) ListSellerOrders(c *gin.Context) {
	if as := c.Query("as"); as != "" && as != "seller" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported value for 'as'"})
		return
	}

	orders, err := h.uc.GetSellerOrders(middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) Transition(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.uc.AdvanceOrder(&orderdto.AdvanceOrderInput{
		OrderID:         c.Param("id"),
		SellerID:        middleware.UserID(c),
		RequestedStatus: domain.OrderStatus(req.Status),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// TransitionView returns the order detail a seller needs before deciding a
// transition: buyer info, history newest first, and the legal next statuses.
func (h *OrderHandler) TransitionView(c *gin.Context) {
	detail, err := h.uc.GetSellerOrderDetail(c.Param("id"), middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *OrderHandler) BuyerDetail(c *gin.Context) {
	detail, err := h.uc.GetBuyerOrderDetail(c.Param("id"), middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *OrderHandler) BuyerHistory(c *gin.Context) {
	items, err := h.uc.GetBuyerOrderHistory(middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": items})
}

func (h *OrderHandler) PendingCount(c *gin.Context) {
	count, err := h.uc.CountActiveSellerOrders(middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pending_count": count})
}
