package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/bellapizza/bellapizza-backend/internal/app/model"
	"github.com/bellapizza/bellapizza-backend/internal/app/repository"
	"github.com/bellapizza/bellapizza-backend/pkg/logger"
	"github.com/bellapizza/bellapizza-backend/pkg/util"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidNationalID = errors.New("national ID must have 11 digits")
)

// DefaultChangeNote is echoed when the customer leaves the change note blank.
const DefaultChangeNote = "No change needed"

// CheckoutRequest carries the delivery details submitted at checkout.
type CheckoutRequest struct {
	Address       string
	PaymentMethod string
	NationalID    string
	Phone         string
	Name          string
	ChangeNote    string
	Notes         string
}

// CheckoutItem is one confirmed order line.
type CheckoutItem struct {
	PizzaID   uint    `json:"pizza_id"`
	PizzaName string  `json:"pizza_name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// CheckoutSummary is the order confirmation returned to the client.
// Orders are not persisted; the summary is the only record handed back.
type CheckoutSummary struct {
	CustomerName  string         `json:"customer_name"`
	Items         []CheckoutItem `json:"items"`
	Total         float64        `json:"total"`
	Address       string         `json:"address"`
	PaymentMethod string         `json:"payment_method"`
	NationalID    string         `json:"national_id"`
	Phone         string         `json:"phone"`
	ChangeNote    string         `json:"change_note"`
	Notes         string         `json:"notes"`
	PlacedAt      time.Time      `json:"placed_at"`
}

type CheckoutService interface {
	Checkout(userID uint, req CheckoutRequest) (*CheckoutSummary, error)
}

type checkoutService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
}

func NewCheckoutService(db *gorm.DB, userRepo repository.UserRepository) CheckoutService {
	return &checkoutService{
		db:       db,
		userRepo: userRepo,
	}
}

// Checkout turns the user's cart into an order confirmation and clears the
// cart, all in one transaction. Cart rows are locked so a concurrent add or
// second checkout cannot slip between the read and the delete.
func (s *checkoutService) Checkout(userID uint, req CheckoutRequest) (*CheckoutSummary, error) {
	logger.Info("Starting checkout", map[string]interface{}{
		"user_id":        userID,
		"payment_method": req.PaymentMethod,
	})

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Checkout failed: user not found", map[string]interface{}{
				"user_id": userID,
			})
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to fetch user for checkout", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			logger.Error("Panic during checkout, rolling back", fmt.Errorf("panic: %v", r), map[string]interface{}{
				"user_id": userID,
			})
		}
	}()

	var cartItems []model.CartItem
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Order("id").
		Preload("Pizza").
		Find(&cartItems).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to fetch cart items for checkout", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	// The empty cart check comes before any national ID validation
	if len(cartItems) == 0 {
		tx.Rollback()
		logger.Warn("Checkout failed: cart is empty", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrEmptyCart
	}

	nationalID := util.NormalizeNationalID(req.NationalID)
	if !util.IsValidNationalID(nationalID) {
		tx.Rollback()
		logger.Warn("Checkout failed: invalid national ID", map[string]interface{}{
			"user_id": userID,
		})
		return nil, ErrInvalidNationalID
	}

	items := make([]CheckoutItem, 0, len(cartItems))
	var total float64
	for _, ci := range cartItems {
		subtotal := ci.Subtotal()
		total += subtotal
		items = append(items, CheckoutItem{
			PizzaID:   ci.PizzaID,
			PizzaName: ci.Pizza.Name,
			UnitPrice: ci.Pizza.Price,
			Quantity:  ci.Quantity,
			Subtotal:  subtotal,
		})
	}

	if err := tx.Where("user_id = ?", userID).Delete(&model.CartItem{}).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to clear cart during checkout", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit checkout transaction", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	// The submitted name wins; the account name is only a fallback.
	customerName := req.Name
	if customerName == "" {
		customerName = user.Name
	}
	changeNote := req.ChangeNote
	if changeNote == "" {
		changeNote = DefaultChangeNote
	}

	summary := &CheckoutSummary{
		CustomerName:  customerName,
		Items:         items,
		Total:         total,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		NationalID:    nationalID,
		Phone:         req.Phone,
		ChangeNote:    changeNote,
		Notes:         req.Notes,
		PlacedAt:      time.Now(),
	}

	logger.Info("Checkout completed successfully", map[string]interface{}{
		"user_id":    userID,
		"item_count": len(items),
		"total":      total,
	})

	return summary, nil
}
