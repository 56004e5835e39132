package controller

import (
	"errors"
	"net/http"

	"github.com/bellapizza/bellapizza-backend/internal/app/service"
	apperrors "github.com/bellapizza/bellapizza-backend/internal/errors"
	"github.com/bellapizza/bellapizza-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkoutService service.CheckoutService
}

func NewCheckoutController(checkoutService service.CheckoutService) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
	}
}

type CheckoutRequest struct {
	Address       string `json:"address" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	NationalID    string `json:"national_id" binding:"required"`
	Phone         string `json:"phone"`
	Name          string `json:"name"`
	ChangeNote    string `json:"change_note"`
	Notes         string `json:"notes"`
}

// Checkout places the order built from the user's cart
// POST /api/v1/checkout
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		log.Warn("Unauthorized checkout attempt", nil)
		apperrors.Unauthorized(c, "Authentication required")
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid checkout request", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Address, payment method and national ID are required")
		return
	}

	log.Debug("Processing checkout", map[string]interface{}{
		"user_id":        userID,
		"payment_method": req.PaymentMethod,
	})

	summary, err := ctrl.checkoutService.Checkout(userID, service.CheckoutRequest{
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		NationalID:    req.NationalID,
		Phone:         req.Phone,
		Name:          req.Name,
		ChangeNote:    req.ChangeNote,
		Notes:         req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			log.Warn("Checkout rejected: empty cart", map[string]interface{}{
				"user_id": userID,
			})
			apperrors.BadRequest(c, apperrors.CartEmpty, "Cart is empty")
		case errors.Is(err, service.ErrInvalidNationalID):
			log.Warn("Checkout rejected: invalid national ID", map[string]interface{}{
				"user_id": userID,
			})
			apperrors.BadRequest(c, apperrors.CheckoutInvalidNationalID, "National ID must have 11 digits")
		case errors.Is(err, service.ErrUserNotFound):
			log.Warn("Checkout rejected: user not found", map[string]interface{}{
				"user_id": userID,
			})
			apperrors.NotFound(c, apperrors.ResourceNotFound, "User not found")
		default:
			log.Error("Checkout failed", err, map[string]interface{}{
				"user_id": userID,
			})
			apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.CheckoutFailed, "Could not place the order. Please try again later")
		}
		return
	}

	log.Info("Checkout completed", map[string]interface{}{
		"user_id":    userID,
		"total":      summary.Total,
		"item_count": len(summary.Items),
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"order":   summary,
	})
}
