package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// preload only when needed
	Orders []Order `json:"-"`
	Cart   *Cart   `gorm:"foreignKey:UserID" json:"-"`
}
