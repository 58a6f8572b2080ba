package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledjassa/marketplace-service/internal/domain"
	orderdto "github.com/ledjassa/marketplace-service/internal/usecase/dto/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrderUsecase returns canned results so handler tests exercise binding
// and error mapping only.
type stubOrderUsecase struct {
	createOut  []*orderdto.OrderOutput
	createErr  error
	advanceOut *orderdto.AdvanceOrderOutput
	advanceErr error
	detailErr  error

	gotCreate  *orderdto.CreateOrdersInput
	gotAdvance *orderdto.AdvanceOrderInput
}

func (s *stubOrderUsecase) CreateOrders(input *orderdto.CreateOrdersInput) ([]*orderdto.OrderOutput, error) {
	s.gotCreate = input
	return s.createOut, s.createErr
}

func (s *stubOrderUsecase) AdvanceOrder(input *orderdto.AdvanceOrderInput) (*orderdto.AdvanceOrderOutput, error) {
	s.gotAdvance = input
	return s.advanceOut, s.advanceErr
}

func (s *stubOrderUsecase) GetSellerOrders(sellerID string) ([]*orderdto.OrderOutput, error) {
	return nil, nil
}

func (s *stubOrderUsecase) GetSellerOrderDetail(orderID, sellerID string) (*orderdto.SellerOrderDetailOutput, error) {
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	return &orderdto.SellerOrderDetailOutput{ID: orderID}, nil
}

func (s *stubOrderUsecase) GetBuyerOrderDetail(orderID, buyerID string) (*orderdto.BuyerOrderDetailOutput, error) {
	return nil, s.detailErr
}

func (s *stubOrderUsecase) GetBuyerOrderHistory(buyerID string) ([]*orderdto.BuyerHistoryItemOutput, error) {
	return nil, nil
}

func (s *stubOrderUsecase) CountActiveSellerOrders(sellerID string) (int64, error) {
	return 3, nil
}

func setupOrderRouter(stub *stubOrderUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewOrderHandler(stub)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("uid", "caller-1")
		c.Next()
	})
	router.POST("/orders", handler.Create)
	router.POST("/orders/:id/transition", handler.Transition)
	router.GET("/orders/:id/transition", handler.TransitionView)
	router.GET("/orders/pending-count", handler.PendingCount)
	return router
}

func TestOrderHandler_Create(t *testing.T) {
	stub := &stubOrderUsecase{
		createOut: []*orderdto.OrderOutput{{ID: "o1", Status: domain.StatusPending}},
	}
	router := setupOrderRouter(stub)

	body := `{"payment_method":"paypal","items":[{"product_id":"p1","quantity":2,"total_amount":2000}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, stub.gotCreate)
	assert.Equal(t, "caller-1", stub.gotCreate.BuyerID)
	assert.Equal(t, domain.PaymentPaypal, stub.gotCreate.PaymentMethod)
	require.Len(t, stub.gotCreate.Items, 1)
	assert.Equal(t, 2, stub.gotCreate.Items[0].Quantity)
}

func TestOrderHandler_Create_BadBody(t *testing.T) {
	router := setupOrderRouter(&stubOrderUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"items":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_Create_InsufficientStock(t *testing.T) {
	stub := &stubOrderUsecase{
		createErr: &domain.InsufficientStockError{ProductName: "Lamp", Available: 1, Requested: 3},
	}
	router := setupOrderRouter(stub)

	body := `{"items":[{"product_id":"p1","quantity":3,"total_amount":3000}]}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Lamp", resp["product"])
	assert.Equal(t, float64(1), resp["available"])
}

func TestOrderHandler_Transition(t *testing.T) {
	stub := &stubOrderUsecase{
		advanceOut: &orderdto.AdvanceOrderOutput{
			Status:    domain.StatusProcessing,
			ChangedAt: time.Now(),
		},
	}
	router := setupOrderRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/orders/o1/transition",
		strings.NewReader(`{"status":"processing"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stub.gotAdvance)
	assert.Equal(t, "o1", stub.gotAdvance.OrderID)
	assert.Equal(t, "caller-1", stub.gotAdvance.SellerID)
	assert.Equal(t, domain.StatusProcessing, stub.gotAdvance.RequestedStatus)
}

func TestOrderHandler_Transition_Invalid(t *testing.T) {
	stub := &stubOrderUsecase{
		advanceErr: &domain.InvalidTransitionError{
			Current:   domain.StatusDelivered,
			Requested: domain.StatusCancelled,
		},
	}
	router := setupOrderRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/orders/o1/transition",
		strings.NewReader(`{"status":"cancelled"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_Transition_NotFound(t *testing.T) {
	stub := &stubOrderUsecase{advanceErr: domain.ErrOrderNotFound}
	router := setupOrderRouter(stub)

	req := httptest.NewRequest(http.MethodPost, "/orders/missing/transition",
		strings.NewReader(`{"status":"processing"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_PendingCount(t *testing.T) {
	router := setupOrderRouter(&stubOrderUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/orders/pending-count", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(3), resp["pending_count"])
}
