package store

import (
	"testing"

	"shivasadhana-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserAssignsIDAndDefaults(t *testing.T) {
	s := NewStore()

	user := s.CreateUser(models.User{
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: "x",
	})

	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, models.RoleCustomer, user.Role)

	got, ok := s.GetUser(user.ID)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestGetUserByEmail(t *testing.T) {
	s := NewStore()

	created := s.CreateUser(models.User{Name: "Asha", Email: "asha@example.com", PasswordHash: "x"})

	got, ok := s.GetUserByEmail("asha@example.com")
	require.True(t, ok)
	assert.Equal(t, created.ID, got.ID)

	_, ok = s.GetUserByEmail("nobody@example.com")
	assert.False(t, ok)
}

func TestCreateRoleIsKeptWhenSet(t *testing.T) {
	s := NewStore()

	user := s.CreateUser(models.User{Name: "Root", Email: "root@example.com", PasswordHash: "x", Role: models.RoleAdmin})
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestProductsListedInInsertionOrder(t *testing.T) {
	s := NewStore()

	first := s.CreateProduct(models.Product{Name: "Mala", Description: "d", Price: 100, Images: []string{"x"}, Category: "Malas"})
	second := s.CreateProduct(models.Product{Name: "Diya", Description: "d", Price: 50, Images: []string{"y"}, Category: "Lamps"})

	products := s.GetProducts()
	require.Len(t, products, 2)
	assert.Equal(t, first.ID, products[0].ID)
	assert.Equal(t, second.ID, products[1].ID)
}

func TestUpdateProductMergesOnlySuppliedFields(t *testing.T) {
	s := NewStore()

	product := s.CreateProduct(models.Product{
		Name:        "Original Rudraksha Mala",
		Description: "Authentic 108 bead mala",
		Price:       2500,
		Images:      []string{"x"},
		Category:    "Malas",
		InStock:     10,
	})

	stock := 5
	updated, err := s.UpdateProduct(product.ID, &models.ProductUpdate{InStock: &stock})
	require.NoError(t, err)

	assert.Equal(t, 5, updated.InStock)
	assert.Equal(t, product.Name, updated.Name)
	assert.Equal(t, product.Description, updated.Description)
	assert.Equal(t, product.Price, updated.Price)
	assert.Equal(t, product.Images, updated.Images)
	assert.Equal(t, product.Category, updated.Category)
	assert.Equal(t, product.CreatedAt, updated.CreatedAt)

	got, ok := s.GetProduct(product.ID)
	require.True(t, ok)
	assert.Equal(t, updated, got)
}

func TestUpdateAbsentProductFails(t *testing.T) {
	s := NewStore()

	name := "Ghost"
	_, err := s.UpdateProduct("no-such-id", &models.ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := NewStore()

	product := s.CreateProduct(models.Product{Name: "Mala", Description: "d", Price: 100, Images: []string{"x"}, Category: "Malas"})

	s.DeleteProduct(product.ID)
	_, ok := s.GetProduct(product.ID)
	assert.False(t, ok)

	// Absent and never-valid ids are silent no-ops.
	s.DeleteProduct(product.ID)
	s.DeleteProduct("never-existed")
	assert.Empty(t, s.GetProducts())
}

func TestProductEndToEnd(t *testing.T) {
	s := NewStore()

	product := s.CreateProduct(models.Product{
		Name:     "Mala",
		Price:    2500,
		InStock:  10,
		Category: "Malas",
		Images:   []string{"x"},
	})

	products := s.GetProducts()
	require.Len(t, products, 1)
	assert.Equal(t, product.ID, products[0].ID)

	stock := 5
	_, err := s.UpdateProduct(product.ID, &models.ProductUpdate{InStock: &stock})
	require.NoError(t, err)

	got, ok := s.GetProduct(product.ID)
	require.True(t, ok)
	assert.Equal(t, 5, got.InStock)
	assert.Equal(t, "Mala", got.Name)
	assert.Equal(t, 2500, got.Price)
	assert.Equal(t, "Malas", got.Category)
	assert.Equal(t, []string{"x"}, got.Images)

	s.DeleteProduct(product.ID)
	assert.Empty(t, s.GetProducts())
}

func TestSeedLoadsAdminAndSampleContent(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Seed("admin@shivasadhana.in", "admin123"))

	admin, ok := s.GetUserByEmail("admin@shivasadhana.in")
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NotEqual(t, "admin123", admin.PasswordHash)

	assert.NotEmpty(t, s.GetProducts())
	assert.NotEmpty(t, s.GetTravels())
	assert.NotEmpty(t, s.GetAccommodations())
	assert.NotEmpty(t, s.GetShraddhaPackages())
	assert.NotEmpty(t, s.GetBanners())
}
