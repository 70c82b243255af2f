package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterReturnsUserAndToken(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User  map[string]interface{} `json:"user"`
		Token string                 `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha@example.com", resp.User["email"])
	assert.Equal(t, "customer", resp.User["role"])
	assert.NotContains(t, w.Body.String(), "secret")
	assert.NotContains(t, resp.User, "password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router, _, _ := newTestRouter(t)

	payload := map[string]string{"name": "Asha", "email": "asha@example.com", "password": "secret"}
	w := doRequest(router, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPost, "/api/auth/register", "", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestRegisterRejectsMalformedPayload(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "No Email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Asha", "email": "asha@example.com", "password": "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "asha@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "asha@example.com", "password": "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User  map[string]interface{} `json:"user"`
		Token string                 `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha@example.com", resp.User["email"])
}

func TestLoginUnknownEmail(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "nobody@example.com", "password": "secret",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutDropsSession(t *testing.T) {
	router, st, sessions := newTestRouter(t)
	_ = st

	w := doRequest(router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Asha", "email": "asha@example.com", "password": "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	w = doRequest(router, http.MethodPost, "/api/auth/logout", resp.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, sessions.users[resp.Token])
}
