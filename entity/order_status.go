package entity

import (
	"gorm.io/gorm"
)

// OrderStatus rows are seeded in chain order:
// received -> preparing -> out-for-delivery -> completed.
type OrderStatus struct {
	gorm.Model
	StatusName string `gorm:"uniqueIndex" json:"statusName"`

	Orders []Order `json:"-"`
}
