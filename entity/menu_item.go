package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	// price in minor units, always > 0
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only for detail views

	CartItems  []CartItem  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}
