package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLoginSuccess(t *testing.T) {
	r, _, _ := newTestServer(t)

	rec := doJSON(r, "POST", "/api/admin/login", "", map[string]string{"password": testPassword})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode(t, rec)
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, true, resp["isAdmin"])
	assert.NotEmpty(t, resp["token"])
}

func TestAdminLoginWrongPassword(t *testing.T) {
	r, _, _ := newTestServer(t)

	rec := doJSON(r, "POST", "/api/admin/login", "", map[string]string{"password": "otra"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decode(t, rec)
	assert.Equal(t, "error", resp["status"])
	assert.NotContains(t, resp, "isAdmin")
}

func TestAdminLoginUnknownUser(t *testing.T) {
	r, _, _ := newTestServer(t)

	rec := doJSON(r, "POST", "/api/admin/login", "", map[string]string{
		"username": "nadie",
		"password": testPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminLoginMissingPassword(t *testing.T) {
	r, _, _ := newTestServer(t)
	rec := doJSON(r, "POST", "/api/admin/login", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIssuedTokenAuthorizesWrites(t *testing.T) {
	r, _, _ := newTestServer(t)

	rec := doJSON(r, "POST", "/api/admin/login", "", map[string]string{"password": testPassword})
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode(t, rec)["token"].(string)

	body, ct := multipartBody(t, map[string]string{"title": "T", "date": "2025", "description": "d"}, nil)
	rec2 := doRequest(r, "POST", "/api/events", token, ct, body)
	assert.Equal(t, http.StatusCreated, rec2.Code, rec2.Body.String())
}

func TestGarbageTokenRejected(t *testing.T) {
	r, _, _ := newTestServer(t)
	body, ct := multipartBody(t, map[string]string{"title": "T", "date": "2025", "description": "d"}, nil)
	rec := doRequest(r, "POST", "/api/events", "no-es-un-token", ct, body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
