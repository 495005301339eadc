package services

import (
	"errors"

	"gorm.io/gorm"
)

// statusChain returns the forward order of status ids. completed is
// terminal; there is no cancellation or reverse path.
func (s *OrderService) statusChain() []uint {
	return []uint{s.Status.Received, s.Status.Preparing, s.Status.OutForDelivery, s.Status.Completed}
}

// nextStatusID returns the only legal successor of a status, or 0 for
// the terminal status.
func (s *OrderService) nextStatusID(current uint) uint {
	chain := s.statusChain()
	for i, id := range chain[:len(chain)-1] {
		if id == current {
			return chain[i+1]
		}
	}
	return 0
}

// Transition moves an order to the named status. Only the immediate
// successor of the current status is accepted, applied with a
// compare-and-swap so a concurrent transition loses cleanly instead of
// double-applying.
func (s *OrderService) Transition(orderID uint, statusName string) (*OrderDetail, error) {
	toID, err := s.Repo.GetStatusIDByName(statusName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if s.nextStatusID(o.OrderStatusID) != toID {
		return nil, ErrInvalidTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.OrderStatusID, toID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	detail, err := s.Detail(orderID)
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.OrderStatusChanged(detail.ID, detail.UserID, detail.Status, detail.Total, detail.UpdatedAt)
	}
	return detail, nil
}
