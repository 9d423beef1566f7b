package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (ts *testServer) login(t *testing.T, email string) (token string, sessionID string) {
	t.Helper()
	w, envelope := ts.do(t, http.MethodPost, "/api/v1/auth/login", "",
		map[string]any{"email": email})
	require.Equal(t, http.StatusCreated, w.Code)

	data := dataOf(t, envelope)
	session := data["session"].(map[string]any)
	return data["token"].(string), session["id"].(string)
}

func TestAuthHandler_Login(t *testing.T) {
	ts := newTestServer(t)

	w, envelope := ts.do(t, http.MethodPost, "/api/v1/auth/login", "",
		map[string]any{"email": "jane@example.com"})
	require.Equal(t, http.StatusCreated, w.Code)

	data := dataOf(t, envelope)
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "Bearer", data["token_type"])

	session := data["session"].(map[string]any)
	assert.Equal(t, "jane", session["name"])
	assert.Equal(t, "jane@example.com", session["email"])
	assert.Equal(t, false, session["guest"])
}

func TestAuthHandler_Login_MissingEmail(t *testing.T) {
	ts := newTestServer(t)

	w, _ := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_BlankIdentifier(t *testing.T) {
	ts := newTestServer(t)

	w, envelope := ts.do(t, http.MethodPost, "/api/v1/auth/login", "",
		map[string]any{"email": "   "})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ERR_INVALID_CREDENTIALS", errorCodeOf(t, envelope))
}

func TestAuthHandler_LoginGuest(t *testing.T) {
	ts := newTestServer(t)

	w, envelope := ts.do(t, http.MethodPost, "/api/v1/auth/guest", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	data := dataOf(t, envelope)
	assert.NotEmpty(t, data["token"])

	session := data["session"].(map[string]any)
	assert.Equal(t, true, session["guest"])
}

func TestAuthHandler_GetSession(t *testing.T) {
	ts := newTestServer(t)
	token, sessionID := ts.login(t, "marco@example.com")

	w, envelope := ts.do(t, http.MethodGet, "/api/v1/auth/session", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	session := dataOf(t, envelope)
	assert.Equal(t, sessionID, session["id"])
	assert.Equal(t, "marco", session["name"])
}

func TestAuthHandler_GetSession_Anonymous(t *testing.T) {
	ts := newTestServer(t)

	w, envelope := ts.do(t, http.MethodGet, "/api/v1/auth/session", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "ERR_UNAUTHORIZED", errorCodeOf(t, envelope))
}

func TestAuthHandler_GetSession_GarbageToken(t *testing.T) {
	ts := newTestServer(t)

	// Invalid tokens are ignored by the optional session middleware,
	// leaving the request anonymous
	w, _ := ts.do(t, http.MethodGet, "/api/v1/auth/session", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_UpdatePlan(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.login(t, "collector@example.com")

	w, envelope := ts.do(t, http.MethodPut, "/api/v1/auth/session/plan", token,
		map[string]any{"plan_code": "collector"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "collector", dataOf(t, envelope)["plan"])
}

func TestAuthHandler_UpdatePlan_UnknownPlan(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.login(t, "someone@example.com")

	w, envelope := ts.do(t, http.MethodPut, "/api/v1/auth/session/plan", token,
		map[string]any{"plan_code": "platinum"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_PLAN_NOT_FOUND", errorCodeOf(t, envelope))
}

func TestAuthHandler_Logout(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.login(t, "leaving@example.com")

	w, _ := ts.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// The session is gone afterwards
	w, envelope := ts.do(t, http.MethodGet, "/api/v1/auth/session", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ERR_NOT_FOUND", errorCodeOf(t, envelope))
}

func TestAuthHandler_Logout_Anonymous(t *testing.T) {
	ts := newTestServer(t)

	w, _ := ts.do(t, http.MethodPost, "/api/v1/auth/logout", "", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
