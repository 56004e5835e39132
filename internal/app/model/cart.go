package model

import (
	"time"

	"gorm.io/gorm"
)

// CartItem is one (user, pizza, quantity) line. The service layer keeps at
// most one line per (user, pizza) pair; repeat adds increment the quantity.
type CartItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	PizzaID   uint           `gorm:"not null;index" json:"pizza_id"`
	Quantity  int            `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Pizza Pizza `gorm:"foreignKey:PizzaID" json:"pizza,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// Subtotal is the line contribution to the cart total.
func (ci *CartItem) Subtotal() float64 {
	return ci.Pizza.Price * float64(ci.Quantity)
}
