package services

import (
	"errors"

	"github.com/doker312/aroras-kitchen-orderflow-app/entity"
	"github.com/doker312/aroras-kitchen-orderflow-app/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	// omitted or non-positive quantity defaults to 1
	Qty int `json:"qty"`
}

type CartView struct {
	Items      []entity.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	Subtotal   int64             `json:"subtotal"`
}

// Get recomputes the derived values from the lines on every read.
func (s *CartService) Get(userID uint) (*CartView, error) {
	c, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	view := &CartView{Items: c.Items}
	if view.Items == nil {
		view.Items = []entity.CartItem{}
	}
	for _, it := range c.Items {
		view.TotalItems += it.Qty
		view.Subtotal += it.UnitPrice * int64(it.Qty)
	}
	return view, nil
}

// Add snapshots the menu item's name and price into the line, merging
// into an existing line for the same item.
func (s *CartService) Add(userID uint, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	m, err := s.MenuRepo.FindByID(in.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	c, err := s.CartRepo.GetOrCreateCart(userID)
	if err != nil {
		return err
	}

	line := &entity.CartItem{
		MenuItemID: m.ID,
		Name:       m.Name,
		Qty:        in.Qty,
		UnitPrice:  m.Price,
		Total:      m.Price * int64(in.Qty),
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

// SetQty overwrites the line quantity; qty <= 0 removes the line.
func (s *CartService) SetQty(userID, menuItemID uint, qty int) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, menuItemID, qty)
	})
}

func (s *CartService) RemoveItem(userID, menuItemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, menuItemID)
	})
}

func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}
