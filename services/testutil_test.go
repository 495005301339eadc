package services_test

import (
	"fmt"
	"testing"

	"github.com/doker312/aroras-kitchen-orderflow-app/entity"
	"github.com/doker312/aroras-kitchen-orderflow-app/repository"
	"github.com/doker312/aroras-kitchen-orderflow-app/services"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a per-test in-memory database, migrates the schema
// and seeds the status chain plus one category.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("connect test database: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, name := range []string{"received", "preparing", "out-for-delivery", "completed"} {
		if err := db.Create(&entity.OrderStatus{StatusName: name}).Error; err != nil {
			t.Fatalf("seed status: %v", err)
		}
	}
	if err := db.Create(&entity.Category{Slug: "starters", Name: "Starters"}).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	u := entity.User{Name: "Test " + role, Email: email, Password: "x", Role: role}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return &u
}

func createMenuItem(t *testing.T, db *gorm.DB, name string, price int64) *entity.MenuItem {
	t.Helper()
	var cat entity.Category
	if err := db.First(&cat).Error; err != nil {
		t.Fatalf("load category: %v", err)
	}
	m := entity.MenuItem{Name: name, Description: name + " description", Price: price, CategoryID: cat.ID}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return &m
}

func newCartService(db *gorm.DB) *services.CartService {
	return services.NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *services.OrderService {
	return services.NewOrderService(db, repository.NewOrderRepository(db), repository.NewCartRepository(db))
}

func newMenuService(db *gorm.DB) *services.MenuService {
	return services.NewMenuService(repository.NewMenuRepository(db))
}
