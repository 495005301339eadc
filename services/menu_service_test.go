package services_test

import (
	"testing"

	"github.com/doker312/aroras-kitchen-orderflow-app/entity"
	"github.com/doker312/aroras-kitchen-orderflow-app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMenuItemValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)

	_, err := svc.Create(&services.CreateMenuItemIn{
		Name:        "  ",
		Description: "",
		Price:       0,
		CategoryID:  9999,
	})
	require.Error(t, err)

	var fields services.FieldErrors
	require.ErrorAs(t, err, &fields, "catalog validation surfaces field-level messages")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "description")
	assert.Contains(t, fields, "price")
	assert.Contains(t, fields, "categoryId")
}

func TestCreateMenuItem(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)

	var cat entity.Category
	require.NoError(t, db.First(&cat).Error)

	m, err := svc.Create(&services.CreateMenuItemIn{
		Name:        "Paneer Tikka",
		Description: "Marinated cottage cheese cubes grilled in tandoor",
		Price:       240,
		CategoryID:  cat.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, m.ID)
	assert.Equal(t, int64(240), m.Price)
}

func TestUpdateMenuItemPartial(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)
	item := createMenuItem(t, db, "Samosa", 80)

	price := int64(95)
	got, err := svc.Update(item.ID, &services.UpdateMenuItemIn{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, int64(95), got.Price)
	assert.Equal(t, "Samosa", got.Name, "unspecified fields are retained")
	assert.Equal(t, item.Description, got.Description)
}

func TestUpdateMenuItemNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)

	name := "Ghost Dish"
	_, err := svc.Update(4242, &services.UpdateMenuItemIn{Name: &name})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUpdateMenuItemRejectsBadFields(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)
	item := createMenuItem(t, db, "Lassi", 90)

	badPrice := int64(-1)
	_, err := svc.Update(item.ID, &services.UpdateMenuItemIn{Price: &badPrice})
	var fields services.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "price")

	// nothing was written
	got, err := svc.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(90), got.Price)
}

func TestDeleteMenuItem(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)
	item := createMenuItem(t, db, "Veg Pakora", 120)

	require.NoError(t, svc.Delete(item.ID))

	_, err := svc.Get(item.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(item.ID), services.ErrNotFound)
}

func TestListMenuFiltersByCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)

	second := entity.Category{Slug: "desserts", Name: "Desserts"}
	require.NoError(t, db.Create(&second).Error)

	a := createMenuItem(t, db, "Paneer Tikka", 240) // first category
	sweet := entity.MenuItem{Name: "Gulab Jamun", Description: "d", Price: 120, CategoryID: second.ID}
	require.NoError(t, db.Create(&sweet).Error)

	all, err := svc.List(0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID, "insertion order")

	filtered, err := svc.List(second.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Gulab Jamun", filtered[0].Name)
}

func TestCategoriesAreSeedOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := newMenuService(db)

	cats, err := svc.Categories()
	require.NoError(t, err)
	assert.Len(t, cats, 1)
	assert.Equal(t, "starters", cats[0].Slug)
}
