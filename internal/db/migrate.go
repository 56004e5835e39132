package db

import (
	"github.com/bellapizza/bellapizza-backend/internal/app/model"
	"github.com/bellapizza/bellapizza-backend/pkg/logger"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Pizza{},
		&model.CartItem{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := seedInitialData(); err != nil {
		logger.Error("Failed to seed initial data during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds initial data to the database (optional)
func Seed() error {
	return seedInitialData()
}

func seedInitialData() error {
	logger.Info("Seeding initial data...")

	if err := seedPizzas(); err != nil {
		logger.Error("Failed to seed pizzas", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

// StarterMenu returns the pizzas inserted on first boot. Prices are in BRL.
func StarterMenu() []model.Pizza {
	return []model.Pizza{
		{Name: "Margherita", Description: "Molho de tomate, mussarela, manjericão fresco e azeite", Price: 45.90, ImageFilename: "pizza-margherita.jpg", Category: "tradicional"},
		{Name: "Calabresa", Description: "Molho de tomate, mussarela, calabresa fatiada e cebola", Price: 48.90, ImageFilename: "pizza-calabresa.jpg", Category: "tradicional"},
		{Name: "Portuguesa", Description: "Molho de tomate, mussarela, presunto, ovos, cebola e azeitonas", Price: 52.90, ImageFilename: "pizza-portuguesa.jpg", Category: "tradicional"},
		{Name: "Quatro Queijos", Description: "Mussarela, provolone, parmesão e gorgonzola", Price: 55.90, ImageFilename: "pizza-quatro-queijos.jpg", Category: "especial"},
		{Name: "Frango Catupiry", Description: "Molho de tomate, frango desfiado e catupiry", Price: 51.90, ImageFilename: "pizza-frango-catupiry.jpg", Category: "especial"},
		{Name: "Pepperoni", Description: "Molho de tomate, mussarela e pepperoni", Price: 58.90, ImageFilename: "pizza-pepperoni.jpg", Category: "especial"},
		{Name: "Vegetariana", Description: "Molho de tomate, mussarela, pimentão, champignon, cebola e azeitonas", Price: 49.90, ImageFilename: "pizza-vegetariana.jpg", Category: "vegetariana"},
		{Name: "Napolitana", Description: "Molho de tomate, mussarela, tomate fatiado e parmesão", Price: 47.90, ImageFilename: "pizza-napolitana.jpg", Category: "tradicional"},
	}
}

// seedPizzas inserts the starter menu once. The catalog is read-only at
// runtime, so an existing row count means the menu is already in place.
func seedPizzas() error {
	var count int64
	if err := DB.Model(&model.Pizza{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Pizzas already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding pizza menu...")

	totalInserted := 0
	for _, pizza := range StarterMenu() {
		if err := DB.Create(&pizza).Error; err != nil {
			logger.Error("Failed to create pizza", err, map[string]interface{}{
				"pizza": pizza.Name,
			})
			return err
		}
		totalInserted++
	}

	logger.Info("Pizza menu seeded successfully", map[string]interface{}{
		"total_pizzas": totalInserted,
	})

	return nil
}
