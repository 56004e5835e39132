package main

import (
	"fmt"
	"log"

	"github.com/bellapizza/bellapizza-backend/config"
	"github.com/bellapizza/bellapizza-backend/internal/app/model"
	"github.com/bellapizza/bellapizza-backend/internal/db"
)

// Prints a quick inventory of the database: registered users, the menu,
// and any cart contents. Read-only; handy when poking at a deployment.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	gdb := db.GetDB()

	var users []model.User
	if err := gdb.Order("id").Find(&users).Error; err != nil {
		log.Fatal("Failed to list users:", err)
	}

	fmt.Printf("=== Users (%d) ===\n", len(users))
	for _, u := range users {
		fmt.Printf("  [%d] %s <%s> registered %s\n", u.ID, u.Name, u.Email, u.CreatedAt.Format("2006-01-02 15:04"))
	}

	var pizzas []model.Pizza
	if err := gdb.Order("id").Find(&pizzas).Error; err != nil {
		log.Fatal("Failed to list pizzas:", err)
	}

	fmt.Printf("\n=== Menu (%d) ===\n", len(pizzas))
	for _, p := range pizzas {
		fmt.Printf("  [%d] %-20s R$ %6.2f  %s\n", p.ID, p.Name, p.Price, p.Category)
	}

	var cartItems []model.CartItem
	if err := gdb.Preload("Pizza").Preload("User").Order("user_id, id").Find(&cartItems).Error; err != nil {
		log.Fatal("Failed to list cart items:", err)
	}

	fmt.Printf("\n=== Cart items (%d) ===\n", len(cartItems))
	var total float64
	for _, ci := range cartItems {
		subtotal := ci.Subtotal()
		total += subtotal
		fmt.Printf("  user=%s pizza=%s x%d = R$ %.2f\n", ci.User.Email, ci.Pizza.Name, ci.Quantity, subtotal)
	}
	if len(cartItems) > 0 {
		fmt.Printf("  combined cart value: R$ %.2f\n", total)
	}
}
