package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSucceedsForSeededAdmin(t *testing.T) {
	engine := newTestEngine(t)

	code, env := doJSON(t, engine, http.MethodPost, "/users/login",
		map[string]any{"email": "admin@clwy.cn", "password": "123123"})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Status)
	assert.Equal(t, "login succeeded.", env.Message)

	user, ok := env.Data["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "admin", user["username"])
	// The password hash must never leak into the payload.
	assert.NotContains(t, user, "password")
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	engine := newTestEngine(t)

	code, env := doJSON(t, engine, http.MethodPost, "/users/login",
		map[string]any{"email": "admin@clwy.cn", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Status)
	assert.Equal(t, "login failed.", env.Message)
	require.NotEmpty(t, env.Errors)
	assert.Equal(t, "incorrect email or password.", env.Errors[0])
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	engine := newTestEngine(t)

	code, env := doJSON(t, engine, http.MethodPost, "/users/login",
		map[string]any{"email": "nobody@example.com", "password": "123123"})
	assert.Equal(t, http.StatusUnauthorized, code)
	// Unknown address and wrong password are indistinguishable.
	assert.Equal(t, "incorrect email or password.", env.Errors[0])
}

func TestLoginRequiresEmailAndPassword(t *testing.T) {
	engine := newTestEngine(t)

	code, env := doJSON(t, engine, http.MethodPost, "/users/login",
		map[string]any{"email": "", "password": ""})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "email and password are required.", env.Message)
	assert.Contains(t, env.Errors, "please provide email and password.")
}

func TestUserCreateValidationOverHTTP(t *testing.T) {
	engine := newTestEngine(t)

	code, env := doJSON(t, engine, http.MethodPost, "/users",
		map[string]any{"email": "not-an-email", "username": "a"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "request parameters are invalid.", env.Message)
	assert.Contains(t, env.Errors, "email format is invalid.")
	assert.Contains(t, env.Errors, "username length must be between 2 and 45.")
}

func TestRootHello(t *testing.T) {
	engine := newTestEngine(t)

	code, env := doJSON(t, engine, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "hello world", env.Message)
}

func TestUnknownRoute(t *testing.T) {
	engine := newTestEngine(t)

	code, env := doJSON(t, engine, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Status)
	assert.Contains(t, env.Errors, "route was not found.")
}
