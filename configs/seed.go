package configs

import (
	"log"

	"github.com/doker312/aroras-kitchen-orderflow-app/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedUsers creates the admin and demo customer accounts once.
func SeedUsers(cfg *Config) error {
	db := DB()

	seed := []struct {
		name, email, password, role string
	}{
		{"Admin User", cfg.AdminEmail, cfg.AdminPassword, "admin"},
		{"Customer User", cfg.DemoEmail, cfg.DemoPassword, "customer"},
	}

	for _, s := range seed {
		if s.email == "" || s.password == "" {
			log.Println("skip seeding user: missing email/password")
			continue
		}
		var count int64
		db.Model(&entity.User{}).Where("email = ?", s.email).Count(&count)
		if count > 0 {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u := entity.User{Name: s.name, Email: s.email, Password: string(hash), Role: s.role}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
		log.Println("seeded user:", s.email)
	}
	return nil
}

// SeedLookups inserts the order status chain and the menu categories.
// Status rows must land in chain order so their ids are ordered too.
func SeedLookups() error {
	db := DB()

	for _, name := range []string{"received", "preparing", "out-for-delivery", "completed"} {
		db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: name})
	}

	categories := []entity.Category{
		{Slug: "starters", Name: "Starters"},
		{Slug: "main-course", Name: "Main Course"},
		{Slug: "biryani", Name: "Biryani"},
		{Slug: "tandoori", Name: "Tandoori"},
		{Slug: "desserts", Name: "Desserts"},
		{Slug: "beverages", Name: "Beverages"},
	}
	for _, c := range categories {
		db.FirstOrCreate(&entity.Category{}, entity.Category{Slug: c.Slug, Name: c.Name})
	}
	return nil
}

// SeedMenu loads the starter catalog. Idempotent by item name.
func SeedMenu() error {
	db := DB()

	items := []struct {
		name, detail, categorySlug string
		price                      int64
	}{
		{"Paneer Tikka", "Marinated cottage cheese cubes grilled in tandoor", "starters", 240},
		{"Samosa", "Crispy pastry filled with spiced potatoes and peas", "starters", 80},
		{"Veg Pakora", "Mixed vegetable fritters", "starters", 120},
		{"Paneer Butter Masala", "Cottage cheese cubes in rich tomato gravy", "main-course", 260},
		{"Dal Makhani", "Black lentils slow-cooked with butter and cream", "main-course", 180},
		{"Chicken Curry", "Traditional chicken curry with aromatic spices", "main-course", 280},
		{"Veg Biryani", "Fragrant rice cooked with mixed vegetables and spices", "biryani", 220},
		{"Chicken Biryani", "Aromatic rice dish with marinated chicken", "biryani", 280},
		{"Tandoori Roti", "Whole wheat bread baked in tandoor", "tandoori", 30},
		{"Butter Naan", "Leavened bread with butter", "tandoori", 50},
		{"Gulab Jamun", "Deep-fried milk solids soaked in sugar syrup", "desserts", 120},
		{"Rasmalai", "Soft cheese patties soaked in sweetened milk", "desserts", 150},
		{"Lassi", "Traditional yogurt-based sweet drink", "beverages", 90},
		{"Masala Chai", "Spiced Indian tea with milk", "beverages", 60},
	}

	for _, it := range items {
		var cat entity.Category
		if err := db.Where("slug = ?", it.categorySlug).First(&cat).Error; err != nil {
			return err
		}
		var count int64
		db.Model(&entity.MenuItem{}).Where("name = ?", it.name).Count(&count)
		if count > 0 {
			continue
		}
		m := entity.MenuItem{
			Name:        it.name,
			Description: it.detail,
			Price:       it.price,
			ImageURL:    "/placeholder.svg",
			CategoryID:  cat.ID,
		}
		if err := db.Create(&m).Error; err != nil {
			return err
		}
	}
	return nil
}
