package router

import (
	"github.com/bellapizza/bellapizza-backend/config"
	"github.com/bellapizza/bellapizza-backend/internal/app/controller"
	"github.com/bellapizza/bellapizza-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authController     *controller.AuthController
	pizzaController    *controller.PizzaController
	cartController     *controller.CartController
	checkoutController *controller.CheckoutController
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	pizzaController *controller.PizzaController,
	cartController *controller.CartController,
	checkoutController *controller.CheckoutController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		pizzaController:    pizzaController,
		cartController:     cartController,
		checkoutController: checkoutController,
		authMiddleware:     authMiddleware,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Bella Pizza API is running",
		})
	})

	// Menu images and other fixed assets
	router.Static("/static", r.config.Static.AssetsDir)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/refresh", r.authController.Refresh)
			auth.POST("/logout", r.authController.Logout)
		}

		user := v1.Group("/user", r.authMiddleware.Authenticate())
		{
			user.GET("/me", r.authController.GetMe)
		}

		pizzas := v1.Group("/pizzas")
		{
			pizzas.GET("", r.pizzaController.ListPizzas)
			pizzas.GET("/:id", r.pizzaController.GetPizza)
		}

		cart := v1.Group("/cart", r.authMiddleware.Authenticate())
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("/add", r.cartController.AddToCart)
			cart.POST("/remove", r.cartController.RemoveFromCart)
			cart.POST("/clear", r.cartController.ClearCart)
		}

		v1.POST("/checkout", r.authMiddleware.Authenticate(), r.checkoutController.Checkout)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
