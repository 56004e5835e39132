package model

import (
	"time"

	"gorm.io/gorm"
)

const DefaultImagePath = "/static/img/pizza-default.jpg"

// Pizza is a sellable menu item. The catalog is seeded once and read-only
// during normal operation.
type Pizza struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Name          string         `gorm:"uniqueIndex;not null" json:"name"`
	Description   string         `gorm:"type:text;not null" json:"description"`
	Price         float64        `gorm:"not null" json:"price"`
	ImageFilename string         `json:"-"`
	Category      string         `gorm:"type:varchar(50)" json:"category"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	CartItems []CartItem `gorm:"foreignKey:PizzaID" json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// ImagePath resolves the stored filename to the static-asset path the
// frontend loads, falling back to the default artwork.
func (p *Pizza) ImagePath() string {
	if p.ImageFilename == "" {
		return DefaultImagePath
	}
	return "/static/img/" + p.ImageFilename
}
