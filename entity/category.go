package entity

import (
	"gorm.io/gorm"
)

// Category is seed data only; there is no runtime creation path.
type Category struct {
	gorm.Model
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
	Name string `gorm:"not null" json:"name"`

	MenuItems []MenuItem `json:"-"`
}
