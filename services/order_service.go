package services

import (
	"errors"
	"time"

	"github.com/doker312/aroras-kitchen-orderflow-app/entity"
	"github.com/doker312/aroras-kitchen-orderflow-app/repository"

	"gorm.io/gorm"
)

type StatusIDs struct {
	Received       uint
	Preparing      uint
	OutForDelivery uint
	Completed      uint
}

// StatusNotifier receives order status changes, e.g. the ws hub.
type StatusNotifier interface {
	OrderStatusChanged(orderID, userID uint, status string, total int64, updatedAt string)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository

	Status   StatusIDs
	Notifier StatusNotifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository) *OrderService {
	s := &OrderService{DB: db, Repo: repo, CartRepo: cartRepo}

	if id, err := repo.GetStatusIDByName("received"); err == nil {
		s.Status.Received = id
	}
	if id, err := repo.GetStatusIDByName("preparing"); err == nil {
		s.Status.Preparing = id
	}
	if id, err := repo.GetStatusIDByName("out-for-delivery"); err == nil {
		s.Status.OutForDelivery = id
	}
	if id, err := repo.GetStatusIDByName("completed"); err == nil {
		s.Status.Completed = id
	}

	return s
}

// ----- DTOs -----

type CheckoutReq struct {
	// the subtotal the client displayed; verified against the
	// server-side recomputation, never trusted
	ExpectedSubtotal int64 `json:"expectedSubtotal"`
}

type CheckoutRes struct {
	ID     uint   `json:"id"`
	Total  int64  `json:"total"`
	Status string `json:"status"`
}

// Checkout builds an order from the caller's cart. Every line is
// snapshotted and the total recomputed from the snapshots; a stale
// client subtotal is rejected rather than silently repriced. The cart
// is cleared as a separate step after the order commits; order
// creation itself never mutates the cart.
func (s *OrderService) Checkout(userID uint, req *CheckoutReq) (*CheckoutRes, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var total int64
	for _, it := range cart.Items {
		total += it.UnitPrice * int64(it.Qty)
	}
	if total != req.ExpectedSubtotal {
		return nil, ErrSubtotalMismatch
	}

	var out CheckoutRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			UserID:        userID,
			OrderStatusID: s.Status.Received,
			Total:         total,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Name:       it.Name,
				Qty:        it.Qty,
				UnitPrice:  it.UnitPrice,
				Total:      it.UnitPrice * int64(it.Qty),
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		out = CheckoutRes{ID: order.ID, Total: order.Total, Status: "received"}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	}); err != nil {
		return nil, err
	}

	return &out, nil
}

// ----- Listings & detail -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

func (s *OrderService) ListAll(statusID *uint, limit int) ([]repository.AdminOrderSummary, error) {
	return s.Repo.ListAllOrders(statusID, limit)
}

type OrderDetail struct {
	ID        uint               `json:"id"`
	UserID    uint               `json:"userId"`
	Total     int64              `json:"total"`
	Status    string             `json:"status"`
	CreatedAt string             `json:"createdAt"`
	UpdatedAt string             `json:"updatedAt"`
	Items     []entity.OrderItem `json:"items"`
}

func (s *OrderService) detail(o *entity.Order) (*OrderDetail, error) {
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	status, err := s.Repo.GetStatusNameByID(o.OrderStatusID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID:        o.ID,
		UserID:    o.UserID,
		Total:     o.Total,
		Status:    status,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: o.UpdatedAt.UTC().Format(time.RFC3339),
		Items:     items,
	}, nil
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.detail(o)
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.detail(o)
}
