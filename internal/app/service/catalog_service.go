package service

import (
	"errors"

	"github.com/bellapizza/bellapizza-backend/internal/app/model"
	"github.com/bellapizza/bellapizza-backend/internal/app/repository"
	"github.com/bellapizza/bellapizza-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrPizzaNotFound = errors.New("pizza not found")
)

// CatalogService exposes the pizza menu. The menu is read-only at runtime;
// rows are inserted by migrations or the seed command.
type CatalogService interface {
	ListPizzas() ([]model.Pizza, error)
	GetPizzaByID(id uint) (*model.Pizza, error)
}

type catalogService struct {
	pizzaRepo repository.PizzaRepository
}

func NewCatalogService(pizzaRepo repository.PizzaRepository) CatalogService {
	return &catalogService{
		pizzaRepo: pizzaRepo,
	}
}

func (s *catalogService) ListPizzas() ([]model.Pizza, error) {
	logger.Debug("Fetching pizza menu")

	pizzas, err := s.pizzaRepo.FindAll()
	if err != nil {
		logger.Error("Failed to fetch pizza menu", err)
		return nil, err
	}

	logger.Info("Pizza menu fetched successfully", map[string]interface{}{
		"count": len(pizzas),
	})
	return pizzas, nil
}

func (s *catalogService) GetPizzaByID(id uint) (*model.Pizza, error) {
	logger.Debug("Fetching pizza by ID", map[string]interface{}{
		"pizza_id": id,
	})

	pizza, err := s.pizzaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Pizza not found", map[string]interface{}{
				"pizza_id": id,
			})
			return nil, ErrPizzaNotFound
		}
		logger.Error("Failed to fetch pizza", err, map[string]interface{}{
			"pizza_id": id,
		})
		return nil, err
	}

	logger.Debug("Pizza fetched successfully", map[string]interface{}{
		"pizza_id": pizza.ID,
		"name":     pizza.Name,
	})
	return pizza, nil
}
