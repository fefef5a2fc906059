package router

import (
	"github.com/storefront-next/internal/config"
	storefronthandlers "github.com/storefront-next/internal/http/handlers/storefront"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := storefronthandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 商品与评价
		apiV1.GET("/products", handler.GetProducts)
		apiV1.GET("/products/:slug", handler.GetProductBySlug)
		apiV1.POST("/products/:slug/reviews", handler.PostReview)

		// 购物车与结算
		apiV1.GET("/cart", handler.GetCart)
		apiV1.POST("/cart/items", handler.AddCartItem)
		apiV1.DELETE("/cart/items/:product_id", handler.DeleteCartItem)
		apiV1.DELETE("/cart", handler.ClearCart)
		apiV1.POST("/checkout", handler.Checkout)

		// 订单
		apiV1.GET("/orders", handler.ListOrders)
		apiV1.PUT("/orders/:id/pay", handler.PayOrder)

		// 会话
		apiV1.POST("/auth/register", handler.Register)
		apiV1.POST("/auth/login", handler.Login)
		apiV1.POST("/auth/logout", handler.Logout)
		apiV1.GET("/session", handler.GetSession)

		// 账户偏好
		apiV1.GET("/me/address", handler.GetAddress)
		apiV1.PUT("/me/address", handler.PutAddress)
		apiV1.PUT("/me/password", handler.ChangePassword)

		// 通知
		apiV1.GET("/notifications", handler.ListNotifications)
		apiV1.DELETE("/notifications/:id", handler.DismissNotification)
	}

	return r
}
