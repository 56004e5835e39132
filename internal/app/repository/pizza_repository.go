package repository

import (
	"github.com/bellapizza/bellapizza-backend/internal/app/model"
	"github.com/bellapizza/bellapizza-backend/pkg/logger"
	"gorm.io/gorm"
)

type PizzaRepository interface {
	Create(pizza *model.Pizza) error
	FindAll() ([]model.Pizza, error)
	FindByID(id uint) (*model.Pizza, error)
	FindByName(name string) (*model.Pizza, error)
	Count() (int64, error)
}

type pizzaRepository struct {
	db *gorm.DB
}

func NewPizzaRepository(db *gorm.DB) PizzaRepository {
	return &pizzaRepository{db: db}
}

func (r *pizzaRepository) Create(pizza *model.Pizza) error {
	logger.Debug("Creating pizza in database", map[string]interface{}{
		"name": pizza.Name,
	})

	if err := r.db.Create(pizza).Error; err != nil {
		logger.Error("Failed to create pizza in database", err, map[string]interface{}{
			"name": pizza.Name,
		})
		return err
	}

	logger.Debug("Pizza created in database", map[string]interface{}{
		"pizza_id": pizza.ID,
		"name":     pizza.Name,
	})
	return nil
}

func (r *pizzaRepository) FindAll() ([]model.Pizza, error) {
	logger.Debug("Finding all pizzas in database")

	var pizzas []model.Pizza
	err := r.db.Order("id").Find(&pizzas).Error
	if err != nil {
		logger.Error("Failed to find pizzas in database", err)
		return nil, err
	}

	logger.Debug("Pizzas found in database", map[string]interface{}{
		"count": len(pizzas),
	})
	return pizzas, nil
}

func (r *pizzaRepository) FindByID(id uint) (*model.Pizza, error) {
	logger.Debug("Finding pizza by ID in database", map[string]interface{}{
		"pizza_id": id,
	})

	var pizza model.Pizza
	err := r.db.First(&pizza, id).Error
	if err != nil {
		logger.Error("Failed to find pizza by ID in database", err, map[string]interface{}{
			"pizza_id": id,
		})
		return nil, err
	}

	logger.Debug("Pizza found by ID in database", map[string]interface{}{
		"pizza_id": pizza.ID,
		"name":     pizza.Name,
	})
	return &pizza, nil
}

func (r *pizzaRepository) FindByName(name string) (*model.Pizza, error) {
	logger.Debug("Finding pizza by name in database", map[string]interface{}{
		"name": name,
	})

	var pizza model.Pizza
	err := r.db.Where("name = ?", name).First(&pizza).Error
	if err != nil {
		logger.Error("Failed to find pizza by name in database", err, map[string]interface{}{
			"name": name,
		})
		return nil, err
	}

	logger.Debug("Pizza found by name in database", map[string]interface{}{
		"pizza_id": pizza.ID,
		"name":     pizza.Name,
	})
	return &pizza, nil
}

func (r *pizzaRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Pizza{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count pizzas in database", err)
		return 0, err
	}
	return count, nil
}
