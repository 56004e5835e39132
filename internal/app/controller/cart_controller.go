package controller

import (
	"errors"
	"net/http"

	"github.com/bellapizza/bellapizza-backend/internal/app/model"
	"github.com/bellapizza/bellapizza-backend/internal/app/service"
	apperrors "github.com/bellapizza/bellapizza-backend/internal/errors"
	"github.com/bellapizza/bellapizza-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddToCartRequest struct {
	PizzaID  uint `json:"pizza_id" binding:"required"`
	Quantity int  `json:"quantity"`
}

type RemoveFromCartRequest struct {
	PizzaID uint `json:"pizza_id" binding:"required"`
}

func cartItemJSON(item *model.CartItem) gin.H {
	return gin.H{
		"id":       item.ID,
		"pizza":    pizzaJSON(&item.Pizza),
		"quantity": item.Quantity,
		"subtotal": item.Subtotal(),
	}
}

// GetCart returns user's cart
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized access to cart", nil)
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	cartItems, total, err := ctrl.cartService.GetUserCart(userID)
	if err != nil {
		log.Error("Failed to fetch cart", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "Could not load the cart. Please try again later")
		return
	}

	items := make([]gin.H, 0, len(cartItems))
	for i := range cartItems {
		items = append(items, cartItemJSON(&cartItems[i]))
	}

	log.Info("Cart fetched successfully", map[string]interface{}{
		"user_id": userID,
		"count":   len(items),
		"total":   total,
	})

	c.JSON(http.StatusOK, gin.H{
		"cart_items": items,
		"count":      len(items),
		"total":      total,
	})
}

// AddToCart adds a pizza to the cart
// POST /api/v1/cart/add
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized attempt to add to cart", nil)
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "pizza_id is required")
		return
	}

	log.Debug("Adding pizza to cart", map[string]interface{}{
		"user_id":  userID,
		"pizza_id": req.PizzaID,
		"quantity": req.Quantity,
	})

	item, err := ctrl.cartService.AddToCart(userID, req.PizzaID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrPizzaNotFound) {
			log.Warn("Pizza not found for cart", map[string]interface{}{
				"user_id":  userID,
				"pizza_id": req.PizzaID,
			})
			apperrors.NotFound(c, apperrors.PizzaNotFound, "Pizza not found")
			return
		}
		log.Error("Failed to add pizza to cart", err, map[string]interface{}{
			"user_id":  userID,
			"pizza_id": req.PizzaID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "add to cart")
		return
	}

	log.Info("Pizza added to cart", map[string]interface{}{
		"user_id":      userID,
		"pizza_id":     req.PizzaID,
		"cart_item_id": item.ID,
		"quantity":     item.Quantity,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Pizza added to cart",
		"cart_item": cartItemJSON(item),
	})
}

// RemoveFromCart removes one pizza line from the cart
// POST /api/v1/cart/remove
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized attempt to remove from cart", nil)
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	var req RemoveFromCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid remove from cart request", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "pizza_id is required")
		return
	}

	if err := ctrl.cartService.RemoveFromCart(userID, req.PizzaID); err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			log.Warn("Cart item not found for removal", map[string]interface{}{
				"user_id":  userID,
				"pizza_id": req.PizzaID,
			})
			apperrors.NotFound(c, apperrors.CartItemNotFound, "Pizza is not in the cart")
			return
		}
		log.Error("Failed to remove pizza from cart", err, map[string]interface{}{
			"user_id":  userID,
			"pizza_id": req.PizzaID,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "remove from cart")
		return
	}

	log.Info("Pizza removed from cart", map[string]interface{}{
		"user_id":  userID,
		"pizza_id": req.PizzaID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Pizza removed from cart",
	})
}

// ClearCart removes everything from the cart
// POST /api/v1/cart/clear
func (ctrl *CartController) ClearCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized attempt to clear cart", nil)
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	if err := ctrl.cartService.ClearCart(userID); err != nil {
		log.Error("Failed to clear cart", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "Could not clear the cart. Please try again later")
		return
	}

	log.Info("Cart cleared", map[string]interface{}{
		"user_id": userID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}
