package services

import (
	"errors"
	"strings"

	"github.com/doker312/aroras-kitchen-orderflow-app/entity"
	"github.com/doker312/aroras-kitchen-orderflow-app/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// No binding tags here: validation happens in Create so failures come
// back per-field instead of as one binding error.
type CreateMenuItemIn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	CategoryID  uint   `json:"categoryId"`
	ImageURL    string `json:"imageUrl"`
}

type UpdateMenuItemIn struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	CategoryID  *uint   `json:"categoryId"`
	ImageURL    *string `json:"imageUrl"`
}

func (s *MenuService) List(categoryID uint) ([]entity.MenuItem, error) {
	return s.Repo.List(categoryID)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return m, err
}

func (s *MenuService) Categories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

func (s *MenuService) Create(in *CreateMenuItemIn) (*entity.MenuItem, error) {
	if err := s.validateCreate(in); err != nil {
		return nil, err
	}

	m := &entity.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update merges the provided fields over the existing record. Absent
// fields keep their current values.
func (s *MenuService) Update(id uint, in *UpdateMenuItemIn) (*entity.MenuItem, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	fields := FieldErrors{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			fields["name"] = "name is required"
		} else {
			updates["name"] = strings.TrimSpace(*in.Name)
		}
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			fields["description"] = "description is required"
		} else {
			updates["description"] = strings.TrimSpace(*in.Description)
		}
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			fields["price"] = "price must be greater than zero"
		} else {
			updates["price"] = *in.Price
		}
	}
	if in.CategoryID != nil {
		ok, err := s.Repo.CategoryExists(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			fields["categoryId"] = "category does not exist"
		} else {
			updates["category_id"] = *in.CategoryID
		}
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if len(fields) > 0 {
		return nil, fields
	}

	if len(updates) > 0 {
		if err := s.Repo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// Delete removes a catalog item. Placed orders keep their snapshots.
func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *MenuService) validateCreate(in *CreateMenuItemIn) error {
	fields := FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(in.Description) == "" {
		fields["description"] = "description is required"
	}
	if in.Price <= 0 {
		fields["price"] = "price must be greater than zero"
	}
	if in.CategoryID == 0 {
		fields["categoryId"] = "category is required"
	} else {
		ok, err := s.Repo.CategoryExists(in.CategoryID)
		if err != nil {
			return err
		}
		if !ok {
			fields["categoryId"] = "category does not exist"
		}
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}
