package service

import (
	"errors"

	"github.com/bellapizza/bellapizza-backend/internal/app/model"
	"github.com/bellapizza/bellapizza-backend/internal/app/repository"
	"github.com/bellapizza/bellapizza-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
)

type CartService interface {
	GetUserCart(userID uint) ([]model.CartItem, float64, error)
	AddToCart(userID, pizzaID uint, quantity int) (*model.CartItem, error)
	RemoveFromCart(userID, pizzaID uint) error
	ClearCart(userID uint) error
}

type cartService struct {
	cartRepo  repository.CartRepository
	pizzaRepo repository.PizzaRepository
}

func NewCartService(
	cartRepo repository.CartRepository,
	pizzaRepo repository.PizzaRepository,
) CartService {
	return &cartService{
		cartRepo:  cartRepo,
		pizzaRepo: pizzaRepo,
	}
}

// CartTotal sums line subtotals. Items must have the Pizza association
// loaded.
func CartTotal(items []model.CartItem) float64 {
	var total float64
	for i := range items {
		total += items[i].Subtotal()
	}
	return total
}

func (s *cartService) GetUserCart(userID uint) ([]model.CartItem, float64, error) {
	logger.Debug("Fetching user cart", map[string]interface{}{
		"user_id": userID,
	})

	cartItems, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		logger.Error("Failed to fetch user cart", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, 0, err
	}

	total := CartTotal(cartItems)

	logger.Info("User cart fetched successfully", map[string]interface{}{
		"user_id": userID,
		"count":   len(cartItems),
		"total":   total,
	})
	return cartItems, total, nil
}

func (s *cartService) AddToCart(userID, pizzaID uint, quantity int) (*model.CartItem, error) {
	// Missing or non-positive quantity defaults to a single pizza
	if quantity < 1 {
		quantity = 1
	}

	logger.Info("Adding pizza to cart", map[string]interface{}{
		"user_id":  userID,
		"pizza_id": pizzaID,
		"quantity": quantity,
	})

	pizza, err := s.pizzaRepo.FindByID(pizzaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot add to cart: pizza not found", map[string]interface{}{
				"user_id":  userID,
				"pizza_id": pizzaID,
			})
			return nil, ErrPizzaNotFound
		}
		logger.Error("Failed to fetch pizza", err, map[string]interface{}{
			"user_id":  userID,
			"pizza_id": pizzaID,
		})
		return nil, err
	}

	// One line per (user, pizza): repeat adds increment the quantity
	existing, err := s.cartRepo.FindByUserAndPizza(userID, pizzaID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Failed to look up existing cart item", err, map[string]interface{}{
			"user_id":  userID,
			"pizza_id": pizzaID,
		})
		return nil, err
	}

	if existing != nil {
		existing.Quantity += quantity
		if err := s.cartRepo.Update(existing); err != nil {
			logger.Error("Failed to update cart item quantity", err, map[string]interface{}{
				"cart_item_id": existing.ID,
				"user_id":      userID,
			})
			return nil, err
		}
		existing.Pizza = *pizza

		logger.Info("Cart item quantity incremented", map[string]interface{}{
			"cart_item_id": existing.ID,
			"user_id":      userID,
			"pizza_id":     pizzaID,
			"quantity":     existing.Quantity,
		})
		return existing, nil
	}

	cartItem := &model.CartItem{
		UserID:   userID,
		PizzaID:  pizzaID,
		Quantity: quantity,
	}
	if err := s.cartRepo.Create(cartItem); err != nil {
		logger.Error("Failed to create cart item", err, map[string]interface{}{
			"user_id":  userID,
			"pizza_id": pizzaID,
		})
		return nil, err
	}
	cartItem.Pizza = *pizza

	logger.Info("Pizza added to cart", map[string]interface{}{
		"cart_item_id": cartItem.ID,
		"user_id":      userID,
		"pizza_id":     pizzaID,
		"quantity":     cartItem.Quantity,
	})
	return cartItem, nil
}

func (s *cartService) RemoveFromCart(userID, pizzaID uint) error {
	logger.Info("Removing pizza from cart", map[string]interface{}{
		"user_id":  userID,
		"pizza_id": pizzaID,
	})

	cartItem, err := s.cartRepo.FindByUserAndPizza(userID, pizzaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cart item not found for removal", map[string]interface{}{
				"user_id":  userID,
				"pizza_id": pizzaID,
			})
			return ErrCartItemNotFound
		}
		logger.Error("Failed to look up cart item for removal", err, map[string]interface{}{
			"user_id":  userID,
			"pizza_id": pizzaID,
		})
		return err
	}

	if err := s.cartRepo.Delete(cartItem.ID); err != nil {
		logger.Error("Failed to delete cart item", err, map[string]interface{}{
			"cart_item_id": cartItem.ID,
			"user_id":      userID,
		})
		return err
	}

	logger.Info("Pizza removed from cart", map[string]interface{}{
		"cart_item_id": cartItem.ID,
		"user_id":      userID,
		"pizza_id":     pizzaID,
	})
	return nil
}

func (s *cartService) ClearCart(userID uint) error {
	logger.Info("Clearing user cart", map[string]interface{}{
		"user_id": userID,
	})

	if err := s.cartRepo.DeleteByUserID(userID); err != nil {
		logger.Error("Failed to clear user cart", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}

	logger.Info("User cart cleared", map[string]interface{}{
		"user_id": userID,
	})
	return nil
}
