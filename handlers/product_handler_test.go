package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSeller(t *testing.T, fs *fakeStore) int {
	t.Helper()

	app := newTestApp(fs)
	doJSON(t, app, http.MethodPost, "/api/register", map[string]interface{}{
		"phone_number": "123",
		"password":     "pw",
	})
	_, body := doJSON(t, app, http.MethodPost, "/api/add_seller", map[string]interface{}{
		"location":    "NY",
		"account_ref": "123",
	})
	return int(body["data"].(map[string]interface{})["id"].(float64))
}

func TestCreateProduct(t *testing.T) {
	fs := newFakeStore()
	sellerID := setupSeller(t, fs)
	app := newTestApp(fs)

	resp, body := doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{
		"seller_id": sellerID,
		"qty":       10,
		"price":     2.50,
		"name":      "Eggs",
		"image":     "eggs.png",
		"type":      "groceries",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Eggs", data["name"])
	assert.Equal(t, 10.0, data["qty"])
}

func TestCreateProductValidation(t *testing.T) {
	fs := newFakeStore()
	sellerID := setupSeller(t, fs)
	app := newTestApp(fs)

	valid := func() map[string]interface{} {
		return map[string]interface{}{
			"seller_id": sellerID,
			"qty":       10,
			"price":     2.50,
			"name":      "Eggs",
			"image":     "eggs.png",
			"type":      "groceries",
		}
	}

	for _, field := range []string{"seller_id", "qty", "price", "name", "image", "type"} {
		t.Run("missing "+field, func(t *testing.T) {
			payload := valid()
			delete(payload, field)
			resp, _ := doJSON(t, app, http.MethodPost, "/api/products", payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCreateProductUnknownSeller(t *testing.T) {
	fs := newFakeStore()
	app := newTestApp(fs)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{
		"seller_id": 9999,
		"qty":       10,
		"price":     2.50,
		"name":      "Eggs",
		"image":     "eggs.png",
		"type":      "groceries",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Nothing was persisted.
	assert.Empty(t, fs.products)
}

func TestGetAllProductsFilters(t *testing.T) {
	fs := newFakeStore()
	sellerID := setupSeller(t, fs)
	app := newTestApp(fs)

	for _, p := range []map[string]interface{}{
		{"seller_id": sellerID, "qty": 10, "price": 2.50, "name": "Eggs", "image": "a.png", "type": "groceries"},
		{"seller_id": sellerID, "qty": 3, "price": 19.90, "name": "Charger", "image": "b.png", "type": "electronics"},
	} {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/products", p)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 2)
	require.NotNil(t, body["meta"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/products?type=groceries", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 1)

	resp, body = doJSON(t, app, http.MethodGet, "/api/products?q=Charger", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["data"].([]interface{}), 1)
}
