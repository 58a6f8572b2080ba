package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledjassa/marketplace-service/internal/delivery/http/handlers"
	"github.com/ledjassa/marketplace-service/internal/delivery/http/middleware"
	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/ledjassa/marketplace-service/internal/usecase"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	Users     usecase.UserUsecase
	Products  usecase.ProductUsecase
	Orders    usecase.OrderUsecase
	Messaging usecase.MessagingUsecase
	Ratings   usecase.RatingUsecase
	JWTSecret string
}

// NewRouter wires every API route. Capability middlewares split the surface
// between buyer and seller accounts; catalog reads are public.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.Default()

	userHandler := handlers.NewUserHandler(deps.Users)
	productHandler := handlers.NewProductHandler(deps.Products)
	orderHandler := handlers.NewOrderHandler(deps.Orders)
	messagingHandler := handlers.NewMessagingHandler(deps.Messaging)
	ratingHandler := handlers.NewRatingHandler(deps.Ratings)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", userHandler.Register)
		auth.POST("/login", userHandler.Login)
	}

	// Public catalog reads.
	api.GET("/products", productHandler.List)
	api.GET("/products/search", productHandler.Search)
	api.GET("/products/:id", productHandler.Get)
	api.GET("/conditions", productHandler.Conditions)
	api.GET("/categories", productHandler.Categories)

	authed := api.Group("", middleware.JWTAuth(deps.JWTSecret))
	{
		authed.GET("/users/me", userHandler.Me)

		seller := authed.Group("")
		{
			seller.POST("/products",
				middleware.RequireAction(domain.ActionPublishProduct), productHandler.Create)
			seller.GET("/products/mine",
				middleware.RequireAction(domain.ActionPublishProduct), productHandler.ListMine)
			seller.PUT("/products/:id",
				middleware.RequireAction(domain.ActionPublishProduct), productHandler.Update)
			seller.DELETE("/products/:id",
				middleware.RequireAction(domain.ActionPublishProduct), productHandler.Delete)
			seller.GET("/statistics",
				middleware.RequireAction(domain.ActionViewStatistics), productHandler.Statistics)

			seller.GET("/orders",
				middleware.RequireAction(domain.ActionManageOrders), orderHandler.ListSellerOrders)
			seller.POST("/orders/:id/transition",
				middleware.RequireAction(domain.ActionManageOrders), orderHandler.Transition)
			seller.GET("/orders/:id/transition",
				middleware.RequireAction(domain.ActionManageOrders), orderHandler.TransitionView)
			seller.GET("/orders/pending-count",
				middleware.RequireAction(domain.ActionManageOrders), orderHandler.PendingCount)
		}

		buyer := authed.Group("")
		{
			buyer.POST("/orders",
				middleware.RequireAction(domain.ActionPlaceOrder), orderHandler.Create)
			buyer.GET("/orders/:id/detail",
				middleware.RequireAction(domain.ActionViewBuyerDetail), orderHandler.BuyerDetail)
			buyer.GET("/orders/history",
				middleware.RequireAction(domain.ActionViewOrderHistory), orderHandler.BuyerHistory)
			buyer.POST("/orders/:id/rating",
				middleware.RequireAction(domain.ActionRateOrder), ratingHandler.Rate)
		}

		authed.GET("/orders/:id/ratings", ratingHandler.ListForOrder)

		authed.POST("/conversations", messagingHandler.Start)
		authed.GET("/conversations", messagingHandler.List)
		authed.GET("/conversations/:id/messages", messagingHandler.ListMessages)
		authed.POST("/conversations/:id/messages", messagingHandler.SendMessage)
	}

	return router
}
