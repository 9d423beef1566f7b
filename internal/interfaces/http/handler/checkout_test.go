package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (ts *testServer) filledCart(t *testing.T, codes ...string) string {
	t.Helper()
	cartID := ts.createCart(t)
	for _, code := range codes {
		ts.do(t, http.MethodPost, "/api/v1/carts/"+cartID+"/items", "",
			map[string]any{"product_id": ts.productID(t, code)})
	}
	return cartID
}

func TestCheckoutHandler_OrderFlow(t *testing.T) {
	ts := newTestServer(t)
	cartID := ts.filledCart(t, "master-belgian-truffles", "valencia-orange-sunrise")

	w, envelope := ts.do(t, http.MethodPost, "/api/v1/checkouts/orders", "",
		map[string]any{"cart_id": cartID})
	require.Equal(t, http.StatusCreated, w.Code)

	co := dataOf(t, envelope)
	checkoutID := co["id"].(string)
	assert.Equal(t, "order", co["kind"])
	assert.Equal(t, "idle", co["status"])
	assert.Equal(t, "44.00", co["amount"])

	w, envelope = ts.do(t, http.MethodPost, "/api/v1/checkouts/"+checkoutID+"/confirm", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "processing", dataOf(t, envelope)["status"])

	ts.checkoutService.Wait()

	w, envelope = ts.do(t, http.MethodGet, "/api/v1/checkouts/"+checkoutID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	co = dataOf(t, envelope)
	assert.Equal(t, "confirmed", co["status"])
	assert.NotEmpty(t, co["confirmed_at"])

	// The cart was emptied on settlement
	_, envelope = ts.do(t, http.MethodGet, "/api/v1/carts/"+cartID, "", nil)
	assert.Equal(t, true, dataOf(t, envelope)["is_empty"])
}

func TestCheckoutHandler_CreateOrder_UnknownCart(t *testing.T) {
	ts := newTestServer(t)

	w, envelope := ts.do(t, http.MethodPost, "/api/v1/checkouts/orders", "",
		map[string]any{"cart_id": "aee0f3c5-9d2d-4f7c-a2f8-6c1f9aa1d001"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_NOT_FOUND", errorCodeOf(t, envelope))
}

func TestCheckoutHandler_Confirm_EmptyCartIsNoOp(t *testing.T) {
	ts := newTestServer(t)
	cartID := ts.createCart(t)

	_, envelope := ts.do(t, http.MethodPost, "/api/v1/checkouts/orders", "",
		map[string]any{"cart_id": cartID})
	checkoutID := dataOf(t, envelope)["id"].(string)

	w, envelope := ts.do(t, http.MethodPost, "/api/v1/checkouts/"+checkoutID+"/confirm", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "idle", dataOf(t, envelope)["status"])
}

func TestCheckoutHandler_SubscriptionFlow(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.login(t, "subscriber@example.com")

	w, envelope := ts.do(t, http.MethodPost, "/api/v1/checkouts/subscriptions", token,
		map[string]any{"plan_code": "premium"})
	require.Equal(t, http.StatusCreated, w.Code)

	co := dataOf(t, envelope)
	checkoutID := co["id"].(string)
	assert.Equal(t, "subscription", co["kind"])
	assert.Equal(t, "89.00", co["amount"])

	w, _ = ts.do(t, http.MethodPost, "/api/v1/checkouts/"+checkoutID+"/confirm", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	ts.checkoutService.Wait()

	// The session is now enrolled in the plan
	_, envelope = ts.do(t, http.MethodGet, "/api/v1/auth/session", token, nil)
	assert.Equal(t, "premium", dataOf(t, envelope)["plan"])
}

func TestCheckoutHandler_Subscription_UnknownPlan(t *testing.T) {
	ts := newTestServer(t)

	w, envelope := ts.do(t, http.MethodPost, "/api/v1/checkouts/subscriptions", "",
		map[string]any{"plan_code": "platinum"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_PLAN_NOT_FOUND", errorCodeOf(t, envelope))
}

func TestCheckoutHandler_Subscription_AnonymousGetsGuestSession(t *testing.T) {
	ts := newTestServer(t)

	_, envelope := ts.do(t, http.MethodPost, "/api/v1/checkouts/subscriptions", "",
		map[string]any{"plan_code": "essential"})
	checkoutID := dataOf(t, envelope)["id"].(string)

	ts.do(t, http.MethodPost, "/api/v1/checkouts/"+checkoutID+"/confirm", "", nil)
	ts.checkoutService.Wait()

	_, envelope = ts.do(t, http.MethodGet, "/api/v1/checkouts/"+checkoutID, "", nil)
	co := dataOf(t, envelope)
	assert.Equal(t, "confirmed", co["status"])
	assert.NotEmpty(t, co["session_id"])
}

func TestCheckoutHandler_Get_Unknown(t *testing.T) {
	ts := newTestServer(t)

	w, envelope := ts.do(t, http.MethodGet, "/api/v1/checkouts/0ba5f1c9-9f2e-4a39-908f-2dd4a1b4d9aa", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_NOT_FOUND", errorCodeOf(t, envelope))
}

func TestCheckoutHandler_Confirm_MalformedID(t *testing.T) {
	ts := newTestServer(t)

	w, envelope := ts.do(t, http.MethodPost, "/api/v1/checkouts/nope/confirm", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ERR_BAD_REQUEST", errorCodeOf(t, envelope))
}
