package entity

import (
	"gorm.io/gorm"
)

// OrderItem is an immutable snapshot of a cart line. Name and price are
// copied at checkout; later catalog edits never reach placed orders.
type OrderItem struct {
	gorm.Model
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	// reference only; the snapshot fields above are authoritative
	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
