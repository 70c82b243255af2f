package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"shivasadhana-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Original Rudraksha Mala",
		"description": "Authentic 108 bead mala",
		"price":       2500,
		"images":      []string{"x"},
		"category":    "Malas",
		"inStock":     10,
	}
}

func TestListProductsIsPublic(t *testing.T) {
	router, st, _ := newTestRouter(t)
	st.CreateProduct(models.Product{Name: "Mala", Description: "d", Price: 100, Images: []string{"x"}, Category: "Malas"})

	w := doRequest(router, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 1)
}

func TestCatalogMutationsRequireAdmin(t *testing.T) {
	router, _, sessions := newTestRouter(t)
	sessions.add("cust", models.User{ID: "user-1", Role: models.RoleCustomer})

	// Anonymous callers are rejected before touching the store.
	w := doRequest(router, http.MethodPost, "/api/products", "", productPayload())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Customers cannot mutate the catalog either.
	w = doRequest(router, http.MethodPost, "/api/products", "cust", productPayload())
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, http.MethodPut, "/api/banners/some-id", "cust", map[string]int{"order": 2})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/travels/some-id", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProductAsAdmin(t *testing.T) {
	router, _, sessions := newTestRouter(t)
	sessions.add("admin", models.User{ID: "admin-1", Role: models.RoleAdmin})

	w := doRequest(router, http.MethodPost, "/api/products", "admin", productPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, 10, product.InStock)
	assert.False(t, product.CreatedAt.IsZero())
}

func TestCreateProductValidatesShape(t *testing.T) {
	router, st, sessions := newTestRouter(t)
	sessions.add("admin", models.User{ID: "admin-1", Role: models.RoleAdmin})

	payload := productPayload()
	delete(payload, "name")

	w := doRequest(router, http.MethodPost, "/api/products", "admin", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, st.GetProducts())
}

func TestUpdateProductPartial(t *testing.T) {
	router, st, sessions := newTestRouter(t)
	sessions.add("admin", models.User{ID: "admin-1", Role: models.RoleAdmin})

	product := st.CreateProduct(models.Product{Name: "Mala", Description: "d", Price: 2500, Images: []string{"x"}, Category: "Malas", InStock: 10})

	w := doRequest(router, http.MethodPut, "/api/products/"+product.ID, "admin", map[string]int{"inStock": 5})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 5, updated.InStock)
	assert.Equal(t, "Mala", updated.Name)
	assert.Equal(t, 2500, updated.Price)
}

func TestUpdateAbsentProductReturnsNotFound(t *testing.T) {
	router, _, sessions := newTestRouter(t)
	sessions.add("admin", models.User{ID: "admin-1", Role: models.RoleAdmin})

	w := doRequest(router, http.MethodPut, "/api/products/no-such-id", "admin", map[string]int{"inStock": 5})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProduct(t *testing.T) {
	router, st, sessions := newTestRouter(t)
	sessions.add("admin", models.User{ID: "admin-1", Role: models.RoleAdmin})

	product := st.CreateProduct(models.Product{Name: "Mala", Description: "d", Price: 100, Images: []string{"x"}, Category: "Malas"})

	w := doRequest(router, http.MethodDelete, "/api/products/"+product.ID, "admin", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Empty(t, st.GetProducts())

	// Deleting an id that never existed is still a success response.
	w = doRequest(router, http.MethodDelete, "/api/products/never-existed", "admin", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBannersListedActiveFlagAndOrder(t *testing.T) {
	router, st, _ := newTestRouter(t)

	inactive := 0
	st.CreateBanner(models.Banner{Title: "b", Subtitle: "s", Image: "i", CtaText: "t", CtaLink: "l", Order: 2, IsActive: &inactive})
	st.CreateBanner(models.Banner{Title: "a", Subtitle: "s", Image: "i", CtaText: "t", CtaLink: "l", Order: 1})

	w := doRequest(router, http.MethodGet, "/api/banners", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var banners []models.Banner
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &banners))
	require.Len(t, banners, 2)
	assert.Equal(t, "a", banners[0].Title)
	assert.Equal(t, 1, *banners[0].IsActive)
	assert.Equal(t, 0, *banners[1].IsActive)
}
