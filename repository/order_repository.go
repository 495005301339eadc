package repository

import (
	"time"

	"github.com/doker312/aroras-kitchen-orderflow-app/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID            uint      `json:"id"`
	Total         int64     `json:"total"`
	OrderStatusID uint      `json:"orderStatusId"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// newest first (presentation contract)
func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Table("orders AS o").
		Select("o.id, o.total, o.order_status_id, s.status_name AS status, o.created_at, o.updated_at").
		Joins("JOIN order_statuses s ON s.id = o.order_status_id").
		Where("o.user_id = ?", userID).
		Order("o.created_at DESC, o.id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

type AdminOrderSummary struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"userId"`
	CustomerName  string    `json:"customerName"`
	Total         int64     `json:"total"`
	OrderStatusID uint      `json:"orderStatusId"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (r *OrderRepository) ListAllOrders(statusID *uint, limit int) ([]AdminOrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}
	var out []AdminOrderSummary
	q := r.DB.Table("orders AS o").
		Select("o.id, o.user_id, u.name AS customer_name, o.total, o.order_status_id, s.status_name AS status, o.created_at, o.updated_at").
		Joins("JOIN users u ON u.id = o.user_id").
		Joins("JOIN order_statuses s ON s.id = o.order_status_id")
	if statusID != nil && *statusID != 0 {
		q = q.Where("o.order_status_id = ?", *statusID)
	}
	err := q.Order("o.created_at DESC, o.id DESC").Limit(limit).Scan(&out).Error
	return out, err
}

// Compare-and-swap on the status id; returns rows affected so the
// caller can tell a stale transition from a successful one.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, fromID, toID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id = ?", orderID, fromID).
		Update("order_status_id", toID)
	return res.RowsAffected, res.Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}

// ---------------- Lookups ----------------

func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.OrderStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}

func (r *OrderRepository) GetStatusNameByID(id uint) (string, error) {
	var row struct{ StatusName string }
	err := r.DB.Model(&entity.OrderStatus{}).
		Select("status_name").Where("id = ?", id).First(&row).Error
	return row.StatusName, err
}
