package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_ListProducts(t *testing.T) {
	ts := newTestServer(t)

	w, envelope := ts.do(t, http.MethodGet, "/api/v1/catalog/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	products := listOf(t, envelope)
	assert.Len(t, products, 8)

	first := products[0].(map[string]any)
	assert.Equal(t, "master-belgian-truffles", first["code"])
	assert.Equal(t, "32.00", first["price"])
}

func TestCatalogHandler_ListProducts_FilterByCategory(t *testing.T) {
	ts := newTestServer(t)

	w, envelope := ts.do(t, http.MethodGet, "/api/v1/catalog/products?category=Juice", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	products := listOf(t, envelope)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.Equal(t, "Juice", p.(map[string]any)["category"])
	}
}

func TestCatalogHandler_GetProduct_ByCode(t *testing.T) {
	ts := newTestServer(t)

	w, envelope := ts.do(t, http.MethodGet, "/api/v1/catalog/products/ruby-berry-pralines", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	product := dataOf(t, envelope)
	assert.Equal(t, "Ruby Berry Pralines", product["name"])
	assert.Equal(t, "28.00", product["price"])
}

func TestCatalogHandler_GetProduct_ByID(t *testing.T) {
	ts := newTestServer(t)

	_, listEnvelope := ts.do(t, http.MethodGet, "/api/v1/catalog/products", "", nil)
	first := listOf(t, listEnvelope)[0].(map[string]any)
	id := first["id"].(string)

	w, envelope := ts.do(t, http.MethodGet, "/api/v1/catalog/products/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first["code"], dataOf(t, envelope)["code"])
}

func TestCatalogHandler_GetProduct_NotFound(t *testing.T) {
	ts := newTestServer(t)

	w, envelope := ts.do(t, http.MethodGet, "/api/v1/catalog/products/no-such-product", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_NOT_FOUND", errorCodeOf(t, envelope))
}

func TestCatalogHandler_ListPlans(t *testing.T) {
	ts := newTestServer(t)

	w, envelope := ts.do(t, http.MethodGet, "/api/v1/catalog/plans", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	plans := listOf(t, envelope)
	require.Len(t, plans, 3)

	first := plans[0].(map[string]any)
	assert.Equal(t, "essential", first["code"])
	assert.Equal(t, "49.00", first["price"])
}

func TestCatalogHandler_GetPlan(t *testing.T) {
	ts := newTestServer(t)

	w, envelope := ts.do(t, http.MethodGet, "/api/v1/catalog/plans/premium", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	plan := dataOf(t, envelope)
	assert.Equal(t, "89.00", plan["price"])
	assert.NotEmpty(t, plan["perks"])
}
