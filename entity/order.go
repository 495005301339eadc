package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// sum of item snapshot totals, fixed at creation
	Total int64 `json:"total"`

	UserID uint `json:"userId"`
	User   User `json:"-"` // preload only for admin listings

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	// preload for detail views
	OrderItems []OrderItem `json:"-"`
}
